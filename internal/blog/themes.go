package blog

// Themes maps theme ids to the template set they are built on
type Themes map[string]string

// DefaultThemes are the themes shipped with the host
var DefaultThemes = Themes{
	"berlin":  "dotty",
	"dotty":   "dotty",
	"blowup":  "mustek",
	"ductile": "mustek",
	"mustek":  "mustek",
}

// TplSet returns the template set of theme, "" when unknown
func (t Themes) TplSet(theme string) string {
	return t[theme]
}
