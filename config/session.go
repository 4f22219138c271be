package config

// Session cookie settings.
type Session struct {
	CookieName string `json:"cookie_name" yaml:"cookie_name"`
	ExpireHour int    `json:"expire_hour" yaml:"expire_hour"`
}

func (s *Session) Cookie() string {
	if s == nil || s.CookieName == "" {
		return "tuiter_sid"
	}
	return s.CookieName
}

func (s *Session) Hours() int {
	if s == nil || s.ExpireHour <= 0 {
		return 24
	}
	return s.ExpireHour
}
