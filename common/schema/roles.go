/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

//goland:noinspection GoUnusedConst
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

const (
	ModerateBlock   = "block"
	ModerateUnblock = "unblock"
)

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

const (
	CrawlPending    = "pending"
	CrawlInProgress = "in_progress"
	CrawlCompleted  = "completed"
	CrawlFailed     = "failed"
)

var (
	RolesAll       = []string{RoleUser, RoleAdmin}
	UserStatusAll  = []string{UserStatusActive, UserStatusSuspended}
	ModerateAll    = []string{ModerateBlock, ModerateUnblock}
	FrequenciesAll = []string{FrequencyDaily, FrequencyWeekly, FrequencyMonthly}
	CrawlStatusAll = []string{CrawlPending, CrawlInProgress, CrawlCompleted, CrawlFailed}
)
