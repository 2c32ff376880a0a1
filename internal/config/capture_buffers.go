package config

// handleCaptureBuffers resolves the capture-engine buffer group: how
// many CPUs share a ring buffer, the buffer size in bytes, and the
// thread cache limit. Each setting is independently overridable and
// keeps its default on a bad value.
func (r *Resolver) handleCaptureBuffers(cfg *Config, s *envSettings) {
	cfg.cpuPerBuffer = r.envPositiveInt("ROX_COLLECTOR_SINSP_CPU_PER_BUFFER", s.CPUPerBuffer, cfg.cpuPerBuffer)
	cfg.bufferSize = r.envPositiveInt("ROX_COLLECTOR_SINSP_BUFFER_SIZE", s.BufferSize, cfg.bufferSize)
	cfg.threadCacheSize = r.envPositiveInt("ROX_COLLECTOR_SINSP_THREAD_CACHE_SIZE", s.ThreadCacheSize, cfg.threadCacheSize)
}
