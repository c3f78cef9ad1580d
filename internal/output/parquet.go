package output

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/chrisdamba/foodbrowse/internal/cloudwriter"
	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// ParquetOutput writes one parquet file per topic partition, locally or to a
// cloud bucket.
type ParquetOutput struct {
	basePath           string
	folder             string
	mu                 sync.Mutex
	writers            map[string]*writer.ParquetWriter
	files              map[string]source.ParquetFile
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

func NewParquetOutput(config *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
	}

	if config.OutputDestination != "" && config.OutputDestination != "local" {
		switch config.CloudStorage.Provider {
		case "s3":
			factory, err := cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
			if err != nil {
				return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
			}
			p.cloudWriterFactory = factory
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
		}
		p.cloudBucketName = config.CloudStorage.BucketName
	}

	return p, nil
}

// NewParquetOutputWithFactory is used when the cloud writer is provided by the
// caller, e.g. a different bucket client.
func NewParquetOutputWithFactory(folder, bucket string, factory cloudwriter.CloudWriterFactory) *ParquetOutput {
	return &ParquetOutput{
		folder:             folder,
		writers:            make(map[string]*writer.ParquetWriter),
		files:              make(map[string]source.ParquetFile),
		cloudWriterFactory: factory,
		cloudBucketName:    bucket,
	}
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	record, err := newRecord(topic)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(msg, record); err != nil {
		return fmt.Errorf("failed to decode %s event: %w", topic, err)
	}

	fullPath, err := partitionDir(p.basePath, p.folder, topic, msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	pw, ok := p.writers[fullPath]
	if !ok {
		pw, err = p.createNewWriter(fullPath, topic)
		if err != nil {
			return fmt.Errorf("failed to create new writer: %w", err)
		}
	}

	if err := pw.Write(reflect.ValueOf(record).Elem().Interface()); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (p *ParquetOutput) createNewWriter(fullPath, topic string) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	var err error
	if p.cloudWriterFactory != nil {
		objectPath := filepath.ToSlash(filepath.Join(strings.TrimPrefix(fullPath, p.basePath), "data.parquet"))
		cloudWriter, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, strings.TrimPrefix(objectPath, "/"))
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = NewCloudParquetFile(cloudWriter)
	} else {
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return nil, err
		}
		fw, err = local.NewLocalFileWriter(filepath.Join(fullPath, "data.parquet"))
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	sc, err := GetSchema(topic)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, nil, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	pw.SchemaHandler = sc
	pw.Footer.Schema = append(pw.Footer.Schema, sc.SchemaElements...)

	p.writers[fullPath] = pw
	p.files[fullPath] = fw
	return pw, nil
}

func (p *ParquetOutput) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	for key, pw := range p.writers {
		if err := pw.WriteStop(); err != nil {
			lastErr = err
			log.Printf("Error closing writer for key %s: %v", key, err)
		}
		if f, ok := p.files[key]; ok {
			if err := f.Close(); err != nil {
				lastErr = err
				log.Printf("Error closing file for key %s: %v", key, err)
			}
		}
		delete(p.writers, key)
		delete(p.files, key)
	}
	return lastErr
}

// CloudParquetFile adapts a CloudWriter to parquet-go's write-only file
// interface. Objects are uploaded on Close.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cloudWriter cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cloudWriter}
}

func (c *CloudParquetFile) Open(string) (source.ParquetFile, error) { return c, nil }

func (c *CloudParquetFile) Create(string) (source.ParquetFile, error) { return c, nil }

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read([]byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (int, error) {
	n, err := c.cloudWriter.Write(p)
	c.offset += int64(n)
	return n, err
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
