package config

import "strings"

// CronSchedule returns the schedule for a job, overridable by CRON_<NAME>
// (name upper-cased, ':' and '-' replaced by '_').
func CronSchedule(name, def string) string {
	key := "CRON_" + strings.NewReplacer(":", "_", "-", "_").Replace(strings.ToUpper(name))
	return GetEnv(key, def)
}
