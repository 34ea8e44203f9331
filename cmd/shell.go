package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/m04kA/SMC-BookingBrowser/internal/integrations/notifier"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/auth"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
	"github.com/m04kA/SMC-BookingBrowser/internal/shell"
	getView "github.com/m04kA/SMC-BookingBrowser/internal/usecase/get_view"
)

func shellCmd() *cobra.Command {
	var login string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Интерактивная сессия бронирования в терминале",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			a, err := bootstrap(ctx, configPath)
			if err != nil {
				return err
			}
			defer a.close()

			gate := auth.NewGate(auth.Credentials{Login: a.cfg.Auth.Login, Password: a.cfg.Auth.Password}, a.log)
			store := session.NewStore(a.reference(), notifier.NewLogNotifier(a.log), a.log)
			sh := shell.New(gate, store, getView.NewUseCase(a.log), os.Stdout)

			reader := bufio.NewReader(os.Stdin)
			for {
				l, password, err := promptCredentials(reader, login)
				if err != nil {
					return err
				}

				err = sh.Login(ctx, l, password)
				if err == nil {
					break
				}
				if !errors.Is(err, shell.ErrNotAuthenticated) {
					return err
				}
				fmt.Println("Неверный логин или пароль")
				login = ""
			}

			return sh.Run(ctx, reader)
		},
	}

	cmd.Flags().StringVar(&login, "login", "", "Логин")
	return cmd
}

func promptCredentials(reader *bufio.Reader, login string) (string, string, error) {
	if login == "" {
		fmt.Print("Логин: ")
		value, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && value != "") {
			return "", "", err
		}
		login = strings.TrimSpace(value)
	}

	fmt.Print("Пароль: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", "", err
		}
		return login, strings.TrimSpace(string(bytes)), nil
	}

	value, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && value != "") {
		return "", "", err
	}
	return login, strings.TrimSpace(value), nil
}
