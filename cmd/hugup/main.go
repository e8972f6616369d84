package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hugup/hugup/internal/app"
	"github.com/hugup/hugup/internal/lock"
	"github.com/hugup/hugup/internal/session"
	"go.uber.org/fx"
)

func main() {
	sessionFlag := flag.String("session", "", "session name (overrides config default)")
	flag.Parse()

	sessionName := session.Resolve(*sessionFlag)
	if err := session.ValidateName(sessionName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fxApp := fx.New(
		app.Module(app.Params{SessionName: sessionName}),
		fx.NopLogger,
	)

	if err := fxApp.Err(); err != nil {
		var held *lock.LockHeldError
		if errors.As(err, &held) {
			fmt.Fprintf(os.Stderr, "session %q is already open in another process (pid %d)\n", sessionName, held.PID)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fxApp.Run()
}
