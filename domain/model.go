package domain

type Story struct {
	Text string
}

// AudioArtifact holds one synthesized narration, either buffered in memory
// or written to a file, depending on the configured sink.
type AudioArtifact struct {
	Data    []byte
	Path    string
	release func()
}

func NewBufferedArtifact(data []byte) AudioArtifact {
	return AudioArtifact{Data: data}
}

func NewFileArtifact(path string, release func()) AudioArtifact {
	return AudioArtifact{Path: path, release: release}
}

func (a AudioArtifact) Buffered() bool {
	return a.Path == ""
}

// Release disposes of any backing storage. Safe to call on buffered
// artifacts and artifacts without a release hook.
func (a AudioArtifact) Release() {
	if a.release != nil {
		a.release()
	}
}
