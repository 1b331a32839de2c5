package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/evcc-charging-report/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$$ /$$    /$$  /$$$$$$   /$$$$$$        /$$$$$$$                                            /$$
        | $$_____/| $$   | $$ /$$__  $$ /$$__  $$      | $$__  $$                                          | $$
        | $$      | $$   | $$| $$  \__/| $$  \__/      | $$  \ $$  /$$$$$$   /$$$$$$   /$$$$$$   /$$$$$$  /$$$$$$
        | $$$$$   |  $$ / $$/| $$      | $$            | $$$$$$$/ /$$__  $$ /$$__  $$ /$$__  $$ /$$__  $$|_  $$_/
        | $$__/    \  $$ $$/ | $$      | $$            | $$__  $$| $$$$$$$$| $$  \ $$| $$  \ $$| $$  \__/  | $$
        | $$        \  $$$/  | $$    $$| $$    $$      | $$  \ $$| $$_____/| $$  | $$| $$  | $$| $$        | $$ /$$
        | $$$$$$$$   \  $/   |  $$$$$$/|  $$$$$$/      | $$  | $$|  $$$$$$$| $$$$$$$/|  $$$$$$/| $$        |  $$$$/
        |________/    \_/     \______/  \______/       |__/  |__/ \_______/| $$____/  \______/ |__/         \___/
                                                                           | $$
                                                                           | $$
                                                                           |__/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("EVCC Charging Report CLI (v%s)", formattedVersion)))
}
