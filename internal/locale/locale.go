// Package locale translates user-facing strings. Message keys are the
// English text; unknown languages and missing entries fall back to them.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var cat = catalog.NewBuilder(catalog.Fallback(language.English))

var translations = map[language.Tag]map[string]string{
	language.French: {
		"Frontend session":      "Session publique",
		"My account":            "Mon compte",
		"Content:":              "Contenu :",
		"Form and menu":         "Formulaire et menu",
		"Only form":             "Formulaire seulement",
		"Only menu":             "Menu seulement",
		"You are connected as:": "Vous êtes connecté en tant que :",
		"Disconnect":            "Déconnexion",
		"Password recovery":     "Récupération du mot de passe",
		"Sign up":               "S'inscrire",
		"Login:":                "Identifiant :",
		"Password:":             "Mot de passe :",
		"Remember me":           "Se souvenir de moi",
		"Connect":               "Connexion",

		"Comments are closed.":             "Les commentaires sont fermés.",
		"Wrong login or password.":         "Identifiant ou mot de passe incorrect.",
		"This account is disabled.":        "Ce compte est désactivé.",
		"This account is not active.":      "Ce compte n'est pas activé.",
		"Page not found.":                  "Page introuvable.",
		"Unable to load posts.":            "Impossible de charger les billets.",
		"Unable to save your comment.":     "Impossible d'enregistrer votre commentaire.",
		"You must provide a comment.":      "Vous devez saisir un commentaire.",
		"You must provide an author name.": "Vous devez indiquer un nom d'auteur.",

		"Comments creation are limited to registered users.": "La création de commentaires est limitée aux utilisateurs enregistrés.",

		"Password recovery is handled by the blog administrator.":      "La récupération du mot de passe est gérée par l'administrateur du blog.",
		"Registration requests are handled by the blog administrator.": "Les demandes d'inscription sont gérées par l'administrateur du blog.",
	},
	language.Chinese: {
		"Frontend session":      "前台会话",
		"My account":            "我的账户",
		"You are connected as:": "当前登录用户：",
		"Disconnect":            "退出登录",
		"Password recovery":     "找回密码",
		"Sign up":               "注册",
		"Login:":                "账号：",
		"Password:":             "密码：",
		"Remember me":           "记住我",
		"Connect":               "登录",

		"Comments are closed.":        "评论已关闭。",
		"Wrong login or password.":    "账号或密码错误",
		"This account is disabled.":   "您的账号已被封禁",
		"This account is not active.": "账号未激活",

		"Comments creation are limited to registered users.": "仅注册用户可以发表评论。",
	},
}

func init() {
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := cat.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

// T translates key into lang ("fr", "zh-CN", ...)
func T(lang, key string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag, message.Catalog(cat)).Sprintf(key)
}
