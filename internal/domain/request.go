package domain

// Params is the raw parameter object received from the calling automation
// engine. Force is a pointer so an omitted value can be told apart from an
// explicit false; the engine's historical default is to re-download.
type Params struct {
	URL                       string `json:"url"`
	Dest                      string `json:"dest"`
	Force                     *bool  `json:"force,omitempty"`
	SkipCertificateValidation bool   `json:"skip_certificate_validation,omitempty"`
	Username                  string `json:"username,omitempty"`
	Password                  string `json:"password,omitempty"`
	ProxyURL                  string `json:"proxy_url,omitempty"`
	ProxyUsername             string `json:"proxy_username,omitempty"`
	ProxyPassword             string `json:"proxy_password,omitempty"`
}

// FetchRequest is the typed, defaulted request a single invocation operates
// on. Build it with NewFetchRequest so defaulting happens in one place.
type FetchRequest struct {
	URL                       string
	Dest                      string
	Force                     bool
	SkipCertificateValidation bool
	Username                  string
	Password                  string
	ProxyURL                  string
	ProxyUsername             string
	ProxyPassword             string
}

// NewFetchRequest applies defaults to the raw parameter object.
// Force defaults to true when omitted.
func NewFetchRequest(p Params) FetchRequest {
	req := FetchRequest{
		URL:                       p.URL,
		Dest:                      p.Dest,
		Force:                     true,
		SkipCertificateValidation: p.SkipCertificateValidation,
		Username:                  p.Username,
		Password:                  p.Password,
		ProxyURL:                  p.ProxyURL,
		ProxyUsername:             p.ProxyUsername,
		ProxyPassword:             p.ProxyPassword,
	}
	if p.Force != nil {
		req.Force = *p.Force
	}
	return req
}

// Validate checks the required parameters. It performs no I/O, so callers
// can reject a bad request before touching the network or the filesystem.
func (r FetchRequest) Validate() error {
	if r.URL == "" {
		return NewTaskError(KindConfiguration, "url is required", nil)
	}
	if r.Dest == "" {
		return NewTaskError(KindConfiguration, "dest is required", nil)
	}
	return nil
}

// HasCredentials reports whether basic auth should be attached.
// Both username and password must be present.
func (r FetchRequest) HasCredentials() bool {
	return r.Username != "" && r.Password != ""
}

// HasProxy reports whether requests should go through a proxy.
func (r FetchRequest) HasProxy() bool {
	return r.ProxyURL != ""
}

// HasProxyCredentials reports whether proxy credentials should be attached.
func (r FetchRequest) HasProxyCredentials() bool {
	return r.ProxyUsername != "" && r.ProxyPassword != ""
}
