package ports

import "go.trai.ch/cloister/internal/core/domain"

// Classifier inspects a validated executable target and reports its
// platform. Pure inspection: safe to call repeatedly, no side effects.
//
//go:generate go run go.uber.org/mock/mockgen -source=classifier.go -destination=mocks/mock_classifier.go -package=mocks
type Classifier interface {
	// Classify reads the binary's file-type signature and maps it to a
	// verdict. An unrecognized signature returns PlatformUnsupported
	// together with domain.ErrUnsupportedPlatform; there is no silent
	// fallback to native.
	Classify(target domain.ExecutableTarget) (domain.PlatformVerdict, error)
}
