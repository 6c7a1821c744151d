package main

import (
	"backend/internal/api"
	"log"
)

// @title Admin Dashboard API
// @version 1.0
// @description REST API панели администрирования: клиенты, счета, КП, дела и настройка ролей

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
