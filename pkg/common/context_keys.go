package common

type contextKey string

const (
	UserIDContextKey contextKey = "user_id"
)
