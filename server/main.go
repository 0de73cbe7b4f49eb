//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common"
	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/null"
	"github.com/UnifyEM/deadlink-watchdog/common/service"
	"github.com/UnifyEM/deadlink-watchdog/common/ulogger"
	"github.com/UnifyEM/deadlink-watchdog/server/api"
	"github.com/UnifyEM/deadlink-watchdog/server/data"
	"github.com/UnifyEM/deadlink-watchdog/server/global"
)

// Swaggo data
// @title Deadlink Watchdog API
// @version 1.0
// @description Dead link monitoring dashboard API
// @host localhost:3001
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

var conf *global.ServerConfig
var dataInstance *data.Data
var apiInstance *api.API
var apiDone = make(chan struct{})

func main() {
	if len(os.Args) < 2 {
		usage()
		exit(1, false)
	}

	// Check for version request
	if strings.ToLower(os.Args[1]) == "version" {
		common.Banner(global.Description, global.Version, global.Build)
		exit(0, false)
	}

	console()
}

// console runs the requested command
func console() {
	var err error

	// Load or create configuration file
	conf, err = global.Config("")
	if err != nil {
		fmt.Printf("Fatal config error: %v\n", err)
		exit(1, false)
	}

	switch strings.ToLower(os.Args[1]) {

	case "admin":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin <email> <password>")
			exit(1, false)
		}

		// Set up data access
		d, dataErr := data.New(conf, null.Logger())
		if dataErr != nil {
			fmt.Printf("Data error: %s\n", dataErr.Error())
			exit(1, false)
		}

		// Set the admin user
		err = d.SetAdmin(os.Args[2], os.Args[3])
		d.Close()
		if err != nil {
			fmt.Printf("Error setting admin user: %s\n", err.Error())
			exit(1, false)
		}
		fmt.Printf("Password set for admin user \"%s\"\n", os.Args[2])

	case "foreground":
		startService()

	case "listen":
		if len(os.Args) != 3 {
			fmt.Println("Usage: listen <address>")
			fmt.Println("Example: dlw-server listen 127.0.0.1:3001")
			exit(1, false)
		}

		address := os.Args[2]
		if _, err := net.ResolveTCPAddr("tcp", address); err != nil {
			fmt.Printf("Invalid listen address: %v\n", err)
			exit(1, false)
		}

		global.ListenOverride = address
		startService()

	default:
		usage()
		exit(1, false)
	}
}

func usage() {
	fmt.Printf("Usage: %s <foreground | listen <address> | admin <email> <password> | version>\n", os.Args[0])
}

func exit(code int, delay bool) {
	if delay {
		fmt.Printf("\nExiting with code %d in %d seconds...\n\n", code, global.ConsoleExitDelay)
		time.Sleep(global.ConsoleExitDelay * time.Second)
	}
	os.Exit(code)
}

// startService runs the server in the foreground until interrupted
func startService() {

	// Create a logger using the loaded configuration
	logger, err := ulogger.New(
		ulogger.WithPrefix(global.LogName),
		ulogger.WithLogFile(conf.SC.Get(global.ConfigLogFile).String()),
		ulogger.WithLogStdout(conf.SC.Get(global.ConfigLogStdout).Bool()),
		ulogger.WithRetention(conf.SC.Get(global.ConfigLogRetention).Int()),
		ulogger.WithDebug(global.Debug))
	if err != nil {
		fmt.Printf("error creating logger: %v\n", err)
		exit(1, false)
	}
	defer logger.Close()

	dataInstance, err = data.New(conf, logger)
	if err != nil {
		logger.Fatalf(1004, "data error: %s", err.Error())
		exit(1, false)
	}
	apiInstance = api.New(conf, logger, dataInstance)

	s, err := service.New(
		service.WithServiceName(global.Name),
		service.WithServiceVersion(global.Version),
		service.WithServiceBuild(global.Build),
		service.WithLogger(logger),
		service.WithTaskTicker(global.TaskTicker*time.Second),
		service.WithBackgroundFunc(ServiceBackground),
		service.WithTasksFunc(ServiceTasks),
		service.WithStopFunc(ServiceStopping),
		service.WithSEid(1500))
	if err != nil {
		logger.Fatalf(1005, "unable to create service: %s", err.Error())
		exit(1, false)
	}

	//goland:noinspection GoDfaErrorMayBeNotNil
	if err = s.Start(); err != nil {
		logger.Fatalf(1006, "service failed to start: %s", err.Error())
		exit(1, false)
	}
}

// ServiceBackground will be launched as a goroutine when the service starts
func ServiceBackground(ctx context.Context, logger interfaces.Logger) {
	defer close(apiDone)
	logger.Infof(2000, "Starting background processes including API")
	apiInstance.Start(ctx)
}

// ServiceTasks will be called at the interval specified by TaskTicker
func ServiceTasks(_ interfaces.Logger) {
	apiInstance.PruneDB()
}

// ServiceStopping waits for the API to drain, then closes the database
func ServiceStopping(logger interfaces.Logger) {
	select {
	case <-apiDone:
	case <-time.After(15 * time.Second):
		logger.Warningf(1008, "API did not stop in time")
	}
	dataInstance.Close()

	// Save the configuration
	if err := conf.Checkpoint(); err != nil {
		logger.Infof(1007, "error saving configuration: %s", err.Error())
	}
}
