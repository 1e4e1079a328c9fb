package token

import "time"

// ComputeExpiresAt returns now advanced by the given number of whole minutes.
func ComputeExpiresAt(now time.Time, expiresInMinutes int) time.Time {
	return now.Add(time.Duration(expiresInMinutes) * time.Minute)
}

// IsExpired reports whether a token expiring at expiresAt is expired at now.
// A token whose expiry equals now is expired.
func IsExpired(expiresAt, now time.Time) bool {
	return !expiresAt.After(now)
}
