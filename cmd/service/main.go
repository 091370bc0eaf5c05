// File: cmd/service/main.go
// @title        RoadReady API
// @version      1.0
// @description  RoadReady 租車平台後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description 格式為 "Bearer {token}"
package main

import (
	"log"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
