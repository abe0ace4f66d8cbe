package common

// AuthHeaderName is the HTTP header used to carry the bearer token on
// outbound requests.
const AuthHeaderName = "Authorization"

// AccessTokenStorageKey is the fixed key under which the session token is
// persisted in the local metadata store. It is the only state that survives
// a restart.
const AccessTokenStorageKey = "access_token"
