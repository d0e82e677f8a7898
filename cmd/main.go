package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-agent-go/internal/api/handler"
	"resume-agent-go/internal/api/router"
	"resume-agent-go/internal/config"
	appCoreLogger "resume-agent-go/internal/logger"
	"resume-agent-go/internal/parser"
	"resume-agent-go/internal/qa"
	"resume-agent-go/internal/storage"
	"resume-agent-go/internal/tracing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	var configPath string
	var initConfigPath string
	pflag.StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "Path to config file")
	pflag.StringVar(&initConfigPath, "init-config", "", "Write a sample config file to the given path and exit")
	pflag.Parse()

	if initConfigPath != "" {
		if err := config.CreateSampleConfig(initConfigPath); err != nil {
			glog.Fatalf("生成示例配置失败: %v", err)
		}
		return
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.SetupTracerProvider(ctx, tracing.ProviderConfig{
		Enabled:      cfg.Tracing.Enabled,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		ServiceName:  cfg.Tracing.ServiceName,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		glog.Fatalf("初始化追踪失败: %v", err)
	}
	defer func() {
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		if err := shutdownTracing(shutdownCtx); err != nil {
			glog.Warnf("关闭追踪提供者失败: %v", err)
		}
	}()

	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		glog.Fatalf("初始化存储失败: %v", err)
	}
	defer storageManager.Close()
	glog.Info("存储服务初始化成功")

	textExtractor, err := parser.NewResumeTextExtractor(ctx)
	if err != nil {
		glog.Fatalf("初始化文本提取器失败: %v", err)
	}
	glog.Info("文本提取器初始化成功")

	resumeParser := parser.NewResumeParser()

	var answerer qa.Answerer
	if cfg.QALLM.Enabled {
		llmClient, err := qa.NewLLMClient(qa.LLMClientConfig{
			APIKey:      cfg.QALLM.APIKey,
			APIURL:      cfg.QALLM.APIURL,
			Model:       cfg.QALLM.Model,
			Temperature: cfg.QALLM.Temperature,
			MaxTokens:   cfg.QALLM.MaxTokens,
			Timeout:     time.Duration(cfg.QALLM.TimeoutSeconds) * time.Second,
		})
		if err != nil {
			// LLM配置不完整时问答降级为纯规则，不拦启动
			glog.Warnf("初始化问答LLM失败，降级为规则问答: %v", err)
		} else {
			answerer = llmClient
			glog.Info("问答LLM初始化成功")
		}
	}
	qaService := qa.NewService(answerer)

	resumeHandler := handler.NewResumeHandler(cfg, storageManager, textExtractor, resumeParser)
	candidateHandler := handler.NewCandidateHandler(cfg, storageManager)
	qaHandler := handler.NewQAHandler(cfg, storageManager, qaService)

	go func() {
		if storageManager.RabbitMQ == nil {
			glog.Warn("RabbitMQ不可用，解析消费者未启动")
			return
		}
		workers := 1
		if n, ok := cfg.RabbitMQ.ConsumerWorkers["parse_consumer_workers"]; ok && n > 0 {
			workers = n
		}
		glog.Infof("启动简历解析消费者，工作协程数: %d", workers)
		for i := 0; i < workers; i++ {
			if _, err := resumeHandler.StartResumeParseConsumer(ctx); err != nil {
				glog.Fatalf("启动简历解析消费者失败: %v", err)
			}
		}
	}()

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, resumeHandler, candidateHandler, qaHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	cancel() // 先停消费者

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

func initLogger(cfg *config.Config) {
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	// Hertz 的框架日志统一走同一个zerolog实例
	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)

	switch cfg.Logger.Level {
	case "debug":
		glog.SetLevel(glog.LevelDebug)
	case "warn":
		glog.SetLevel(glog.LevelWarn)
	case "error":
		glog.SetLevel(glog.LevelError)
	default:
		glog.SetLevel(glog.LevelInfo)
	}
}
