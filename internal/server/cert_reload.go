package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"careersie/internal/errors"
	"careersie/internal/observability"

	"github.com/fsnotify/fsnotify"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// CertReloader watches the server certificate and key files and reloads the
// key pair when either changes. The loaded certificate is served through
// tls.Config.GetCertificate so new connections pick it up without a restart.
type CertReloader struct {
	mu sync.RWMutex

	certFile string
	keyFile  string

	current *tls.Certificate

	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	stopChan   chan struct{}
	reloadChan chan struct{}

	obsManager *observability.ObservabilityManager
	logger     *errors.Logger

	running        bool
	reloadCount    int64
	lastReloadTime time.Time
	lastReloadErr  string
}

// NewCertReloader creates a certificate reloader for the given key pair files
func NewCertReloader(certFile, keyFile string, debounceDelay time.Duration, om *observability.ObservabilityManager, logger *errors.Logger) (*CertReloader, error) {
	if certFile == "" || keyFile == "" {
		return nil, fmt.Errorf("certificate reload requires certFile and keyFile paths")
	}
	if debounceDelay == 0 {
		debounceDelay = time.Second
	}

	cr := &CertReloader{
		certFile:      certFile,
		keyFile:       keyFile,
		debounceDelay: debounceDelay,
		stopChan:      make(chan struct{}),
		reloadChan:    make(chan struct{}, 1), // Buffered to prevent blocking
		obsManager:    om,
		logger:        logger,
	}

	// Load the initial key pair before watching so GetCertificate never
	// serves an empty certificate.
	if err := cr.reload(); err != nil {
		return nil, fmt.Errorf("failed to load initial certificate: %w", err)
	}

	return cr, nil
}

// Start begins watching the certificate files for changes
func (cr *CertReloader) Start() error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.running {
		return fmt.Errorf("certificate reloader is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	cr.fsWatcher = watcher

	// Watch the directories rather than the files themselves so atomic
	// writes (rename over the file) are caught.
	dirs := map[string]bool{}
	for _, file := range []string{cr.certFile, cr.keyFile} {
		dirs[filepath.Dir(file)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			cr.cleanupWatcher()
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	cr.running = true
	go cr.watchLoop()

	if cr.logger != nil {
		cr.logger.Info("Certificate reloader started",
			"cert_file", cr.certFile,
			"key_file", cr.keyFile,
			"debounce_delay", cr.debounceDelay)
	}

	return nil
}

// cleanupWatcher closes the file watcher and logs any errors
func (cr *CertReloader) cleanupWatcher() {
	if cr.fsWatcher != nil {
		if closeErr := cr.fsWatcher.Close(); closeErr != nil && cr.logger != nil {
			cr.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
	}
}

// Stop stops the certificate reloader
func (cr *CertReloader) Stop() error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if !cr.running {
		return nil
	}

	close(cr.stopChan)

	if cr.debounceTimer != nil {
		cr.debounceTimer.Stop()
	}

	if cr.fsWatcher != nil {
		if err := cr.fsWatcher.Close(); err != nil {
			if cr.logger != nil {
				cr.logger.LogError(err, "Failed to close file system watcher")
			}
			return err
		}
	}

	cr.running = false

	if cr.logger != nil {
		cr.logger.Info("Certificate reloader stopped")
	}

	return nil
}

// GetCertificate returns the current certificate for tls.Config.GetCertificate
func (cr *CertReloader) GetCertificate(hello *tls.ClientHelloInfo) (*tls.Certificate, error) {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	if cr.current == nil {
		return nil, fmt.Errorf("no certificate loaded")
	}
	return cr.current, nil
}

// Status reports reloader state for the health endpoint
func (cr *CertReloader) Status() map[string]any {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	status := map[string]any{
		"enabled":      true,
		"running":      cr.running,
		"cert_file":    cr.certFile,
		"key_file":     cr.keyFile,
		"reload_count": cr.reloadCount,
	}
	if !cr.lastReloadTime.IsZero() {
		status["last_reload_time"] = cr.lastReloadTime
	}
	if cr.lastReloadErr != "" {
		status["last_reload_error"] = cr.lastReloadErr
	}
	return status
}

// watchLoop is the main event loop for file watching
func (cr *CertReloader) watchLoop() {
	for {
		select {
		case event, ok := <-cr.fsWatcher.Events:
			if !ok {
				return
			}
			if cr.shouldProcessEvent(event) {
				cr.scheduleReload()
			}

		case err, ok := <-cr.fsWatcher.Errors:
			if !ok {
				return
			}
			if cr.logger != nil {
				cr.logger.LogError(err, "File watcher error")
			}

		case <-cr.reloadChan:
			cr.handleReload()

		case <-cr.stopChan:
			return
		}
	}
}

// shouldProcessEvent determines if a file system event should trigger a reload
func (cr *CertReloader) shouldProcessEvent(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)
	if base != filepath.Base(cr.certFile) && base != filepath.Base(cr.keyFile) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// scheduleReload schedules a debounced reload
func (cr *CertReloader) scheduleReload() {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.debounceTimer != nil {
		cr.debounceTimer.Stop()
	}

	cr.debounceTimer = time.AfterFunc(cr.debounceDelay, func() {
		select {
		case cr.reloadChan <- struct{}{}:
		default:
			// Reload already scheduled
		}
	})
}

// handleReload performs the reload and records the outcome
func (cr *CertReloader) handleReload() {
	err := cr.reload()

	if cr.logger != nil {
		if err != nil {
			cr.logger.LogError(err, "Failed to reload TLS certificates")
		} else {
			cr.logger.Info("TLS certificates reloaded successfully",
				"cert_file", cr.certFile)
		}
	}

	cr.recordReloadMetric(err == nil)
}

// reload loads the key pair from disk and swaps it in
func (cr *CertReloader) reload() error {
	cert, err := tls.LoadX509KeyPair(cr.certFile, cr.keyFile)

	cr.mu.Lock()
	defer cr.mu.Unlock()

	cr.reloadCount++
	cr.lastReloadTime = time.Now()

	if err != nil {
		cr.lastReloadErr = err.Error()
		return fmt.Errorf("failed to load key pair: %w", err)
	}

	cr.current = &cert
	cr.lastReloadErr = ""
	return nil
}

// recordReloadMetric records the certificate reload counter
func (cr *CertReloader) recordReloadMetric(success bool) {
	if cr.obsManager == nil {
		return
	}

	metrics := cr.obsManager.GetMetrics()
	if metrics.CertReloadCount == nil {
		return
	}

	metrics.CertReloadCount.Add(context.Background(), 1, metric.WithAttributes(
		attribute.Bool("success", success),
	))
}
