// redact маскирует чувствительные значения перед записью в лог.
// Токены и пароли в лог не попадают ни в каком виде; email остаётся
// узнаваемым по домену и первым символам локальной части.
package redact

import "strings"

// Email маскирует локальную часть адреса, домен остаётся читаемым.
// Всё, что не похоже на адрес, маскируется целиком.
func Email(s string) string {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***"
	}

	if len(local) > 2 {
		return local[:2] + "***@" + domain
	}

	return "***@" + domain
}

// Token — плейсхолдер вместо значения токена.
func Token() string { return "[REDACTED_TOKEN]" }
