// Package timezone resolves the application timezone from APP_TIMEZONE and
// provides helpers for producing timestamps in it.
//
//	now := timezone.Now()
//	formatted := timezone.Format(now, constant.DateFormat)
//
// Only IANA names are accepted ("UTC", "Europe/Paris", "Asia/Jakarta").
// An unknown name falls back to UTC.
package timezone
