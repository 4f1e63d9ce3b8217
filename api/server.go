package api

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/vincenzo-scotto001/fantastic-giggle/api/controllers"
	"github.com/vincenzo-scotto001/fantastic-giggle/api/transport"
	"github.com/vincenzo-scotto001/fantastic-giggle/council"
	"github.com/vincenzo-scotto001/fantastic-giggle/logging"
	"github.com/vincenzo-scotto001/fantastic-giggle/openai"
	"github.com/vincenzo-scotto001/fantastic-giggle/storage"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Create storage
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	dynamoClient := dynamodb.NewFromConfig(cfg)

	elderStorage := &storage.DynamoElderStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameElders,
	}
	interactionStorage := &storage.DynamoInteractionStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameInteractions,
	}

	// Model client and council components
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		logging.Log.Warn("OPENAI_API_KEY not set, model calls will fail over to fallbacks")
	}
	client := openai.NewClient(apiKey, s.config.BaseURL, time.Duration(s.config.TimeoutSeconds)*time.Second)

	responder := council.NewResponder(client, s.config.Model)
	adjudicator := council.NewAdjudicator(client, s.config.Model, nil)
	summarizer := council.NewSummarizer(client, s.config.Model)

	//Register controllers
	councilController := controllers.NewCouncilController(elderStorage, responder, adjudicator, summarizer)
	councilController.RegisterRoutes(r)
	debateController := controllers.NewDebateController(elderStorage, interactionStorage, responder, adjudicator, summarizer, controllers.DebateOptions{
		Rounds:      s.config.Rounds,
		CouncilSize: s.config.CouncilSize,
		TurnDelay:   time.Duration(s.config.TurnDelayMs) * time.Millisecond,
		Stream:      s.config.Stream,
	})
	debateController.RegisterRoutes(r)
	elderMetaController := controllers.NewElderMetaController()
	elderMetaController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(interactionStorage)
	adminController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
