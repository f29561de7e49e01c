package v1

// BasePath is the URL prefix all routes of this API version are mounted
// under.
const BasePath = "/api"
