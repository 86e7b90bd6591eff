//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Notify displays a toast through the Windows notification center by
// running the WinRT calls in a powershell child.
func Notify(title, body string, opts Options) error {
	icon := strings.TrimSpace(opts.IconPath)
	template := "ToastText02"
	if icon != "" {
		template = "ToastImageAndText02"
	}
	lines := []string{
		`[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null`,
		fmt.Sprintf(`$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::%s)`, template),
		`$texts = $template.GetElementsByTagName("text")`,
		fmt.Sprintf(`$texts.Item(0).AppendChild($template.CreateTextNode(%s)) > $null`, psQuote(title)),
		fmt.Sprintf(`$texts.Item(1).AppendChild($template.CreateTextNode(%s)) > $null`, psQuote(body)),
	}
	if icon != "" {
		lines = append(lines,
			`$image = $template.GetElementsByTagName("image").Item(0)`,
			fmt.Sprintf(`$image.SetAttribute("src", %s)`, psQuote(icon)),
		)
	}
	lines = append(lines,
		`$toast = [Windows.UI.Notifications.ToastNotification]::new($template)`,
		fmt.Sprintf(`$notifier = [Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s)`, psQuote(appName)),
		`$notifier.Show($toast)`,
	)
	return exec.Command("powershell.exe", "-NoProfile", "-Command", strings.Join(lines, "; ")).Run()
}
