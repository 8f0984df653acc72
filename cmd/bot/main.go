package main

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"datecourse/internal/config"
	"datecourse/internal/course"
	"datecourse/internal/logging"
	"datecourse/internal/repository"
	"datecourse/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	userService := service.NewUserService(repository.NewUserRepository(db))
	courseService := service.NewCourseService(
		repository.NewCourseRepository(db), repository.NewPlaceRepository(db),
		repository.NewHistoryRepository(db), nil, logger)

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatal("bot init failed", zap.Error(err))
	}
	logger.Info("bot started", zap.String("username", bot.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		msg := update.Message
		if msg == nil || !msg.IsCommand() {
			continue
		}
		ctx := context.Background()
		chatID := msg.Chat.ID

		user, err := userService.AuthTelegramUser(ctx, msg.From.ID, msg.From.UserName, msg.From.FirstName, msg.From.LastName)
		if err != nil {
			logger.Error("telegram auth", zap.Int64("telegram_id", msg.From.ID), zap.Error(err))
			send(bot, logger, chatID, "Could not sign you in, try again later.")
			continue
		}

		args := strings.Fields(msg.CommandArguments())
		switch msg.Command() {
		case "start":
			send(bot, logger, chatID, "Hi "+user.FirstName+"! Use /courses to see your date courses.")

		case "courses":
			courses, err := courseService.ListByUser(ctx, user.ID)
			if err != nil {
				logger.Error("list courses", zap.Error(err))
				send(bot, logger, chatID, "Could not load your courses.")
				continue
			}
			send(bot, logger, chatID, formatCourseList(courses))

		case "course", "history", "check":
			if len(args) == 0 {
				send(bot, logger, chatID, "Usage: /"+msg.Command()+" <course id>")
				continue
			}
			send(bot, logger, chatID, courseReply(ctx, courseService, user.ID, msg.Command(), args))

		default:
			send(bot, logger, chatID, "Commands: /courses, /course <id>, /history <id>, /check <id> [budget]")
		}
	}
}

func courseReply(ctx context.Context, svc *service.CourseService, userID, cmd string, args []string) string {
	id := args[0]
	switch cmd {
	case "history":
		records, err := svc.History(ctx, userID, id)
		if err != nil {
			return errorText(err)
		}
		return formatHistory(records)
	case "check":
		var cons course.Constraints
		if len(args) > 1 {
			if budget, err := strconv.Atoi(args[1]); err == nil {
				cons.Budget = &budget
			}
		}
		c, err := svc.Get(ctx, userID, id)
		if err != nil {
			return errorText(err)
		}
		return formatCheck(svc.Check(*c), course.Suggest(*c, cons))
	}
	c, err := svc.Get(ctx, userID, id)
	if err != nil {
		return errorText(err)
	}
	return formatCourse(c)
}

func errorText(err error) string {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		return "Course not found."
	case errors.Is(err, service.ErrForbidden):
		return "That course is not yours."
	}
	return "Something went wrong."
}

func send(bot *tgbotapi.BotAPI, logger *zap.Logger, chatID int64, text string) {
	if _, err := bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		logger.Warn("telegram send", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
