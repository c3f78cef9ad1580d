package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chrisdamba/foodbrowse/internal/models"
)

// OutputDestination receives JSON encoded events for a topic. Every event
// carries a unix "timestamp" used for partitioning.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// Publish JSON encodes event and writes it to dest.
func Publish(dest OutputDestination, topic string, event any) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", topic, err)
	}
	return dest.WriteMessage(topic, msg)
}

// NewOutputDestination picks Kafka when enabled, otherwise a file format under
// output_path, falling back to the console.
func NewOutputDestination(cfg *models.Config) (OutputDestination, error) {
	if cfg.KafkaEnabled {
		return NewKafkaOutput(cfg)
	}
	if cfg.OutputPath == "" {
		return NewConsoleOutput(os.Stdout), nil
	}
	switch cfg.OutputFormat {
	case "parquet":
		return NewParquetOutput(cfg)
	case "json":
		return NewJSONOutput(cfg.OutputPath, cfg.OutputFolder), nil
	case "console", "":
		return NewConsoleOutput(os.Stdout), nil
	}
	return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
}

type ConsoleOutput struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleOutput(w io.Writer) *ConsoleOutput {
	return &ConsoleOutput{out: w}
}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintf(c.out, "[%s] %s\n", topic, msg); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}
	return nil
}

func (c *ConsoleOutput) Close() error { return nil }

// JSONOutput writes newline delimited JSON files partitioned by topic and
// event date.
type JSONOutput struct {
	basePath string
	folder   string

	mu    sync.Mutex
	files map[string]*os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	fullPath, err := partitionDir(j.basePath, j.folder, topic, msg)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	file, ok := j.files[fullPath]
	if !ok {
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return err
		}
		file, err = os.OpenFile(filepath.Join(fullPath, "data.json"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		j.files[fullPath] = file
	}

	if _, err := file.Write(append(append([]byte(nil), msg...), '\n')); err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	return nil
}

func (j *JSONOutput) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	var lastErr error
	for key, file := range j.files {
		if err := file.Close(); err != nil {
			lastErr = err
		}
		delete(j.files, key)
	}
	return lastErr
}

func partitionDir(basePath, folder, topic string, msg []byte) (string, error) {
	var envelope struct {
		Timestamp *int64 `json:"timestamp"`
	}
	if err := json.Unmarshal(msg, &envelope); err != nil {
		return "", err
	}
	if envelope.Timestamp == nil {
		return "", fmt.Errorf("invalid timestamp")
	}
	eventTime := time.Unix(*envelope.Timestamp, 0).UTC()
	partition := fmt.Sprintf("year=%d/month=%02d/day=%02d", eventTime.Year(), eventTime.Month(), eventTime.Day())
	return filepath.Join(basePath, folder, topic, partition), nil
}
