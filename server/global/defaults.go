/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

const (
	ConfigServerSet       = "server"
	ConfigLogFile         = "log_file"
	ConfigLogStdout       = "log_stdout"
	ConfigLogRetention    = "log_retention"
	ConfigListen          = "listen"
	ConfigDataPath        = "data_path"
	ConfigDBPath          = "db_path"
	ConfigHTTPTimeout     = "http_timeout"
	ConfigHTTPIdleTimeout = "http_idle_timeout"
	ConfigMaxConcurrent   = "max_concurrent"
	ConfigPenaltyBoxMin   = "penalty_box_min"
	ConfigPenaltyBoxMax   = "penalty_box_max"
	ConfigHandlerTimeout  = "handler_timeout"
	ConfigAccessLife      = "access_token_life"  // seconds
	ConfigRefreshLife     = "refresh_token_life" // seconds
	ConfigLoginRateTokens = "login_rate_tokens"
	ConfigLoginRateWindow = "login_rate_window" // seconds
	ConfigCodeTTL         = "verification_code_ttl"
	ConfigResetTTL        = "reset_token_ttl"
	ConfigRedisAddr       = "redis_addr"
	ConfigRedisPassword   = "redis_password"
	ConfigRedisDB         = "redis_db"
	ConfigMailer          = "mailer" // log, smtp or mailgun
	ConfigMailFrom        = "mail_from"
	ConfigSMTPHost        = "smtp_host"
	ConfigSMTPPort        = "smtp_port"
	ConfigSMTPUser        = "smtp_user"
	ConfigSMTPPassword    = "smtp_password"
	ConfigMailgunDomain   = "mailgun_domain"
	ConfigMailgunKey      = "mailgun_api_key"
	ConfigMailgunBase     = "mailgun_api_base"
	ConfigSecureCookies   = "secure_cookies"

	ConfigPrivate = "server_private"
	ConfigJWTKey  = "jwt_key"
)

const (
	MailerLog     = "log"
	MailerSMTP    = "smtp"
	MailerMailgun = "mailgun"
)

// setDefaults makes sure the sets exist, sets default values, and constraints
func setDefaults(c interfaces.Config) (interfaces.Parameters, interfaces.Parameters) {

	// Server configuration set
	sc := c.NewSet(ConfigServerSet)
	sc.SetConstraint(ConfigLogFile, 0, 0, "")               // no log file by default
	sc.SetConstraint(ConfigLogStdout, 0, 0, true)           // by default log to stdout
	sc.SetConstraint(ConfigLogRetention, 1, 0, 30)          // days
	sc.SetConstraint(ConfigListen, 0, 0, "127.0.0.1:3001")  // listen address
	sc.SetConstraint(ConfigDataPath, 0, 0, "")              // data path (base directory for data)
	sc.SetConstraint(ConfigDBPath, 0, 0, "")                // database path
	sc.SetConstraint(ConfigHTTPTimeout, 1, 0, 30)           // seconds
	sc.SetConstraint(ConfigHTTPIdleTimeout, 1, 0, 30)       // seconds
	sc.SetConstraint(ConfigMaxConcurrent, 0, 0, 100)        // concurrent connections, others will wait
	sc.SetConstraint(ConfigPenaltyBoxMin, 0, 0, 250)        // milliseconds
	sc.SetConstraint(ConfigPenaltyBoxMax, 0, 0, 1000)       // milliseconds
	sc.SetConstraint(ConfigHandlerTimeout, 1, 0, 30)        // seconds
	sc.SetConstraint(ConfigAccessLife, 60, 0, 15*60)        // 15 minutes
	sc.SetConstraint(ConfigRefreshLife, 300, 0, 7*24*60*60) // 7 days
	sc.SetConstraint(ConfigLoginRateTokens, 0, 0, 10)       // 0 disables
	sc.SetConstraint(ConfigLoginRateWindow, 1, 0, 15*60)    // seconds
	sc.SetConstraint(ConfigCodeTTL, 60, 0, 24*60*60)        // seconds
	sc.SetConstraint(ConfigResetTTL, 60, 0, 60*60)          // seconds
	sc.SetConstraint(ConfigRedisAddr, 0, 0, "")             // empty keeps codes in the database
	sc.SetConstraint(ConfigRedisPassword, 0, 0, "")
	sc.SetConstraint(ConfigRedisDB, 0, 15, 0)
	sc.SetConstraint(ConfigMailer, 0, 0, MailerLog) // codes are written to the log
	sc.SetConstraint(ConfigMailFrom, 0, 0, "noreply@localhost")
	sc.SetConstraint(ConfigSMTPHost, 0, 0, "localhost")
	sc.SetConstraint(ConfigSMTPPort, 1, 65535, 25)
	sc.SetConstraint(ConfigSMTPUser, 0, 0, "")
	sc.SetConstraint(ConfigSMTPPassword, 0, 0, "")
	sc.SetConstraint(ConfigMailgunDomain, 0, 0, "")
	sc.SetConstraint(ConfigMailgunKey, 0, 0, "")
	sc.SetConstraint(ConfigMailgunBase, 0, 0, "")      // empty uses the Mailgun default
	sc.SetConstraint(ConfigSecureCookies, 0, 0, false) // set for https deployments

	// Protected configuration items
	sp := c.NewSet(ConfigPrivate)
	sp.SetConstraint(ConfigJWTKey, 0, 0, "")

	// Return the sets
	return sc, sp
}
