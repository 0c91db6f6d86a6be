package common

// AuthTokenHeaderName is the HTTP header that carries the bearer token on
// requests to protected routes.
const AuthTokenHeaderName = "Authorization"
