package transport

import "fmt"

const (
	// EnvDevelopment targets a backend running on the local machine.
	EnvDevelopment = "dev"

	devBaseURL      = "http://localhost:4060/"
	serviceHost     = "showrunner-46b2.encoreapi.com"
	prodURLTemplate = "https://%s/%s/"
)

// ResolveBaseURL maps a deployment environment name to the backend base URL.
// The returned URL always ends with a slash so RPC names can be appended.
func ResolveBaseURL(environment string) string {
	if environment == EnvDevelopment {
		return devBaseURL
	}
	return fmt.Sprintf(prodURLTemplate, serviceHost, environment)
}
