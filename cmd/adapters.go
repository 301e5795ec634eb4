package cmd

import (
	"context"

	"github.com/quocvuong92/tassist/internal/browser"
	"github.com/quocvuong92/tassist/internal/constants"
	"github.com/quocvuong92/tassist/internal/display"
	"github.com/quocvuong92/tassist/internal/githubapi"
)

// spinningVerifier shows a spinner while GitHub is queried
type spinningVerifier struct {
	client *githubapi.Client
}

func (v spinningVerifier) VerifyUser(ctx context.Context, username string) error {
	return display.NewSpinner("Checking GitHub account "+username+"...").While(func() error {
		return v.client.VerifyUser(ctx, username)
	})
}

// spinningLauncher shows a spinner while the browser starts
type spinningLauncher struct {
	launcher *browser.SystemLauncher
}

func (l spinningLauncher) OpenURL(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultLaunchTimeout)
	defer cancel()
	return display.NewSpinner("Opening "+url+"...").While(func() error {
		return l.launcher.OpenURL(ctx, url)
	})
}
