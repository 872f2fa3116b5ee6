package types

// GitHubToken is the bearer credential for the GitHub API. Loggers censor
// values of this type; keep it typed until it reaches the HTTP client.
type GitHubToken string

// IsEmpty reports whether no token was provided
func (x GitHubToken) IsEmpty() bool {
	return x == ""
}
