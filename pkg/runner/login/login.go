package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/puertosur/arribo/pkg/client"
	"github.com/puertosur/arribo/pkg/store"
)

// Login authenticates against the backend and persists the session
// cookie so later commands reuse it. With Out set it signs out and
// clears the stored cookie instead.
type Login struct {
	Username    string
	Password    string
	Out         bool
	Client      *client.Client
	Credentials store.Credentials
}

func (n *Login) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not login, no client")
	}
	if n.Credentials == nil {
		return errors.New("can not login, no credential store")
	}

	if n.Out {
		if err := n.Client.Logout(ctx); err != nil {
			return err
		}
		if err := n.Credentials.Clear(); err != nil {
			return err
		}
		f := color.New(color.Faint)
		_, _ = f.Println("sesión cerrada")
		return nil
	}

	username := n.Username
	if username == "" {
		p := promptui.Prompt{Label: "Usuario"}
		v, err := p.Run()
		if err != nil {
			return err
		}
		username = v
	}
	password := n.Password
	if password == "" {
		p := promptui.Prompt{Label: "Contraseña", Mask: '*'}
		v, err := p.Run()
		if err != nil {
			return err
		}
		password = v
	}

	cookie, err := n.Client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := n.Credentials.SaveSession(cookie); err != nil {
		return fmt.Errorf("sesión iniciada pero no persistida: %w", err)
	}

	g := color.New(color.FgGreen)
	_, _ = g.Printf("sesión iniciada como %s\n", username)
	return nil
}
