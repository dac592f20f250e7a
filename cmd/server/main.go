package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"vidtube/internal/db"
	"vidtube/internal/handlers"
	"vidtube/internal/middleware"
)

// CommitSHA is set at build time via ldflags
var CommitSHA = "unknown"

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	store, err := db.New(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}
	if err := db.RunMigrations(os.Getenv("DATABASE_URL"), migrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "127.0.0.1:6379"
	}
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	defer asynqClient.Close()

	h := handlers.New(store, asynqClient)
	limiter := middleware.NewRateLimiterMiddleware(rate.Limit(5), 10)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public reads.
	api.HandleFunc("/healthz", h.Healthcheck).Methods(http.MethodGet)
	api.HandleFunc("/videos", h.GetVideos).Methods(http.MethodGet)
	api.HandleFunc("/subscriptions/c/{channelId}", h.GetChannelSubscribers).Methods(http.MethodGet)
	api.HandleFunc("/subscriptions/c/{channelId}/count", h.GetSubscriberCount).Methods(http.MethodGet)
	api.HandleFunc("/subscriptions/u/{subscriberId}", h.GetSubscribedChannels).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/stats/{channelId}", h.GetChannelStats).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/videos/{channelId}", h.GetChannelVideos).Methods(http.MethodGet)
	api.HandleFunc("/comments/{videoId}", h.GetVideoComments).Methods(http.MethodGet)
	api.HandleFunc("/tweets/user/{userId}", h.GetUserTweets).Methods(http.MethodGet)
	api.HandleFunc("/playlist/user/{userId}", h.GetUserPlaylists).Methods(http.MethodGet)
	api.HandleFunc("/playlist/{playlistId}", h.GetPlaylist).Methods(http.MethodGet)
	r.HandleFunc("/rss/{channelId}", h.GetChannelRSS).Methods(http.MethodGet)

	// Caller-scoped operations sit behind auth and the per-user limiter.
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth(store, jwtSecret))
	protected.Use(limiter.Middleware)

	protected.HandleFunc("/likes/toggle/v/{videoId}", h.ToggleVideoLike).Methods(http.MethodPost)
	protected.HandleFunc("/likes/toggle/c/{commentId}", h.ToggleCommentLike).Methods(http.MethodPost)
	protected.HandleFunc("/likes/toggle/t/{tweetId}", h.ToggleTweetLike).Methods(http.MethodPost)
	protected.HandleFunc("/likes/videos", h.GetLikedVideos).Methods(http.MethodGet)

	protected.HandleFunc("/subscriptions/c/{channelId}", h.ToggleSubscription).Methods(http.MethodPost)

	protected.HandleFunc("/videos", h.CreateVideo).Methods(http.MethodPost)
	protected.HandleFunc("/videos/{videoId}", h.GetVideo).Methods(http.MethodGet)
	protected.HandleFunc("/videos/{videoId}", h.UpdateVideo).Methods(http.MethodPatch)
	protected.HandleFunc("/videos/{videoId}", h.DeleteVideo).Methods(http.MethodDelete)
	protected.HandleFunc("/videos/toggle/publish/{videoId}", h.TogglePublish).Methods(http.MethodPatch)

	protected.HandleFunc("/comments/{videoId}", h.AddComment).Methods(http.MethodPost)
	protected.HandleFunc("/comments/c/{commentId}", h.UpdateComment).Methods(http.MethodPatch)
	protected.HandleFunc("/comments/c/{commentId}", h.DeleteComment).Methods(http.MethodDelete)

	protected.HandleFunc("/tweets", h.CreateTweet).Methods(http.MethodPost)
	protected.HandleFunc("/tweets/{tweetId}", h.UpdateTweet).Methods(http.MethodPatch)
	protected.HandleFunc("/tweets/{tweetId}", h.DeleteTweet).Methods(http.MethodDelete)

	protected.HandleFunc("/playlist", h.CreatePlaylist).Methods(http.MethodPost)
	protected.HandleFunc("/playlist/add/{videoId}/{playlistId}", h.AddVideoToPlaylist).Methods(http.MethodPatch)
	protected.HandleFunc("/playlist/remove/{videoId}/{playlistId}", h.RemoveVideoFromPlaylist).Methods(http.MethodPatch)
	protected.HandleFunc("/playlist/{playlistId}", h.UpdatePlaylist).Methods(http.MethodPatch)
	protected.HandleFunc("/playlist/{playlistId}", h.DeletePlaylist).Methods(http.MethodDelete)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on :%s (commit: %s)", port, CommitSHA)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
