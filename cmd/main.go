package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "bookingd",
	Short:        "Сервис сессий бронирования ресурсов",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "Путь к файлу конфигурации")
}

func main() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(shellCmd())
	rootCmd.AddCommand(resourcesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
