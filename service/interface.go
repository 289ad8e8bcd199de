package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services own long-lived resources that outlive a single frame: log sink, audio device
//
// Lifecycle:
//  1. Construction (via factory)
//  2. Init(args...) - configuration from parsed flags
//  3. Start() - acquire devices, launch goroutines
//  4. [runtime operation]
//  5. Stop() - release resources, idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init and Start before this one
	Dependencies() []string

	// Init configures the service; args are passed through from Hub.InitAll
	Init(args ...any) error

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}
