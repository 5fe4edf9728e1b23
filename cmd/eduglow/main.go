// Package main EduGlow API
//
// @title           EduGlow API
// @version         1.0
// @description     API маркетплейса репетиторов: учётные записи, каталог, пробные уроки и бронирования
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name eduglow_session
package main

import (
	"os"

	_ "github.com/magabrotheeeer/eduglow/docs"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
