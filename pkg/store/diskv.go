package store

import (
	"errors"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
)

const sessionKey = "session"

// Credentials persists the backend session cookie between runs.
type Credentials interface {
	SaveSession(cookie string) error
	Session() string
	Clear() error
}

// OpenCredentials opens the credential store under ~/.arribo (or the
// given basePath when non-empty).
func OpenCredentials(basePath string) (Credentials, error) {
	if basePath == "" {
		expanded, err := homedir.Expand("~/.arribo")
		if err != nil {
			return nil, err
		}
		basePath = expanded
	}
	return &credentials{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 4 * 1024,
	})}, nil
}

type credentials struct {
	d *diskv.Diskv
}

func (c *credentials) SaveSession(cookie string) error {
	return c.d.Write(sessionKey, []byte(cookie))
}

// Session returns the stored cookie, or "" when none is saved.
func (c *credentials) Session() string {
	val, err := c.d.Read(sessionKey)
	if err != nil {
		return ""
	}
	return string(val)
}

func (c *credentials) Clear() error {
	err := c.d.Erase(sessionKey)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
