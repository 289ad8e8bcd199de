package audio

import "log"

// Service wraps SoundManager as a hub-managed service
type Service struct {
	config  *Config
	manager *SoundManager
}

// NewService creates an audio service with environment-derived defaults
func NewService() *Service {
	return &Service{
		config: LoadConfig(),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements service.Service
// Depends on the log sink so device failures land in the debug log
func (s *Service) Dependencies() []string {
	return []string{"logsink"}
}

// Init implements service.Service
// Picks the first *Config among args, if any
func (s *Service) Init(args ...any) error {
	for _, arg := range args {
		if cfg, ok := arg.(*Config); ok && cfg != nil {
			s.config = cfg
			break
		}
	}
	s.manager = NewSoundManager(s.config.MasterVolume)
	return nil
}

// Start implements service.Service
// A missing audio device is not an error: the manager stays silent
func (s *Service) Start() error {
	if !s.config.Enabled {
		s.manager.SetMuted(true)
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// Manager returns the sound manager, nil before Init
func (s *Service) Manager() *SoundManager {
	return s.manager
}
