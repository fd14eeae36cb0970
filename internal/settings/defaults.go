package settings

// Defaults 站点设置默认值，数据库中没有对应行时生效
// 键名与前端约定保持 camelCase
func Defaults() map[string]any {
	return map[string]any{
		"siteName":                 "IPTV Hub",
		"siteDescription":          "Your ultimate guide to IPTV streaming, devices, and setup tutorials",
		"siteUrl":                  "http://localhost:3000",
		"logoUrl":                  "",
		"faviconUrl":               "",
		"defaultMetaTitle":         "IPTV Hub - Streaming Guides & Reviews",
		"defaultMetaDescription":   "Discover the best IPTV players, streaming devices, and setup guides.",
		"defaultMetaKeywords":      "IPTV, streaming, firestick, android tv, IPTV players",
		"googleAnalyticsId":        "",
		"googleSearchConsoleId":    "",
		"smtpHost":                 "",
		"smtpPort":                 float64(587),
		"smtpUser":                 "",
		"smtpPassword":             "",
		"fromEmail":                "",
		"fromName":                 "IPTV Hub",
		"enableRegistration":       true,
		"requireEmailVerification": true,
		"enableTwoFactor":          false,
		"sessionTimeout":           float64(24),
		"maxLoginAttempts":         float64(5),
		"articlesPerPage":          float64(12),
		"enableComments":           false,
		"moderateComments":         true,
		"allowGuestComments":       false,
		"imagekitPublicKey":        "",
		"imagekitPrivateKey":       "",
		"imagekitUrlEndpoint":      "",
	}
}
