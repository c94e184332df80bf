package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/attendify/attendify-backend-go/internal/config"
	appHTTP "github.com/attendify/attendify-backend-go/internal/handler/http"
	"github.com/attendify/attendify-backend-go/internal/pkg/gemini"
	"github.com/attendify/attendify-backend-go/internal/pkg/mailer"
	chatService "github.com/attendify/attendify-backend-go/internal/service/chat"
	reportService "github.com/attendify/attendify-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	geminiClient, err := gemini.NewClient(context.Background(), cfg.Gemini)
	if err != nil {
		log.Fatal("Failed to initialize gemini client: ", err)
	}

	smtpMailer := mailer.NewMailer(cfg.SMTP)

	chatSvc := chatService.NewChatService(geminiClient)
	reportSvc := reportService.NewReportMailService(smtpMailer)

	chatHandler := appHTTP.NewChatHandler(chatSvc)
	emailHandler := appHTTP.NewEmailHandler(reportSvc)

	router := appHTTP.NewRouter(cfg.App, chatHandler, emailHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
