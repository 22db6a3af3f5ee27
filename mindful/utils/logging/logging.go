package logging

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	AppLogger     *zap.Logger
	RequestLogger *zap.Logger
	TimerLogger   *zap.Logger
	ErrorLogger   *zap.Logger
)

// ensureLogsDir makes sure the ./logs folder exists
func ensureLogsDir() {
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		panic("Failed to create logs directory: " + err.Error())
	}
}

func newRotatingCore(encoder zapcore.Encoder, filename string, maxSize, maxAge int, level zapcore.Level) zapcore.Core {
	return zapcore.NewCore(encoder,
		zapcore.AddSync(&lumberjack.Logger{
			Filename: filename, MaxSize: maxSize, MaxAge: maxAge, Compress: true,
		}),
		level,
	)
}

func InitLogger() {
	ensureLogsDir()
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	AppLogger = zap.New(newRotatingCore(encoder, "./logs/app.log", 100, 28, zap.InfoLevel))
	RequestLogger = zap.New(newRotatingCore(encoder, "./logs/request.log", 50, 7, zap.InfoLevel))
	TimerLogger = zap.New(newRotatingCore(encoder, "./logs/timer.log", 50, 7, zap.InfoLevel))
	ErrorLogger = zap.New(newRotatingCore(encoder, "./logs/error.log", 100, 30, zap.ErrorLevel))
}

// LogDuration lets you do: defer logging.LogDuration(ctx, "ProcessMessage")()
func LogDuration(ctx context.Context, name string) func() {
	start := time.Now()

	traceID, _ := ctx.Value("trace_id").(string)

	return func() {
		duration := time.Since(start).Milliseconds()
		fields := []zap.Field{
			zap.String("func", name),
			zap.Int64("duration_ms", duration),
		}
		if traceID != "" {
			fields = append(fields, zap.String("trace_id", traceID))
		}

		TimerLogger.Info("Function timed", fields...)
	}
}
