// Package main Study Assistant API Server
//
//	@title			Study Assistant API
//	@version		1.0
//	@description	AI-powered chat, summary, and quiz services for uploaded documents
//
//	@host		localhost:8080
//	@BasePath	/
package main

import (
	"log"

	_ "study-assistant/docs" // This imports the docs package to initialize swagger
	"study-assistant/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("Starting Study Assistant server...")
	srv := server.NewServer()
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
