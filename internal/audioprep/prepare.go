package audioprep

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/askidmobile/transcriptcore/internal/project"
)

// Options configures Prepare's search and conversion behavior.
type Options struct {
	// BaseDirs are searched, in order, for a relative incoming path that
	// does not exist as given (§6: "relative under known base dirs").
	BaseDirs []string
	// FFmpegPath is the converter binary; empty means "ffmpeg" on PATH.
	FFmpegPath string
	// WorkDir is where a re-encoded sibling WAV is written.
	WorkDir string
}

// resolveCandidate returns the first existing path among: the path as
// given, a file: URL stripped to its path, and the path joined under each
// base dir, matching the audio prepare contract's source-resolution order.
func resolveCandidate(incoming string, baseDirs []string) (string, error) {
	if incoming == "" {
		return "", project.ResourceError(ErrNoSourceAudioFound, fmt.Errorf("no incoming path supplied"))
	}

	try := incoming
	if strings.HasPrefix(incoming, "file://") {
		try = strings.TrimPrefix(incoming, "file://")
	}
	if _, err := os.Stat(try); err == nil {
		return try, nil
	}

	if !filepath.IsAbs(incoming) {
		for _, base := range baseDirs {
			candidate := filepath.Join(base, incoming)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}

	return "", project.ResourceError(ErrNoSourceAudioFound, fmt.Errorf("no candidate exists for %q", incoming))
}

// Prepare resolves incomingPath to a readable file, inspects it, and, if it
// is not already canonical, re-encodes it with ffmpeg into opts.WorkDir.
// The output is re-inspected so the returned Metadata always describes the
// file at ResolvedPath (§6).
func Prepare(ctx context.Context, incomingPath string, opts Options) (Prepared, error) {
	originalPath, err := resolveCandidate(incomingPath, opts.BaseDirs)
	if err != nil {
		return Prepared{}, err
	}

	meta, err := Inspect(originalPath)
	if err != nil {
		return Prepared{}, err
	}
	if meta.IsCanonical() {
		return Prepared{OriginalPath: originalPath, ResolvedPath: originalPath, Metadata: meta}, nil
	}

	resolvedPath, err := reencode(ctx, originalPath, opts)
	if err != nil {
		return Prepared{}, err
	}

	finalMeta, err := Inspect(resolvedPath)
	if err != nil {
		return Prepared{}, err
	}
	if !finalMeta.IsCanonical() {
		return Prepared{}, project.ResourceError(ErrAudioValidationFailed, fmt.Errorf(
			"%s is still non-canonical after conversion (rate=%d channels=%d depth=%d)",
			resolvedPath, finalMeta.SampleRate, finalMeta.Channels, finalMeta.BitDepth))
	}

	return Prepared{
		OriginalPath: originalPath,
		ResolvedPath: resolvedPath,
		Metadata:     finalMeta,
		WasConverted: true,
	}, nil
}

// reencode shells out to ffmpeg to produce a canonical sibling WAV, the way
// an external-encoder collaborator is expected to (§5 Suspension points).
func reencode(ctx context.Context, srcPath string, opts Options) (string, error) {
	bin := opts.FFmpegPath
	if bin == "" {
		bin = "ffmpeg"
	}
	if _, err := exec.LookPath(bin); err != nil {
		return "", project.ResourceError(ErrConverterUnavailable, fmt.Errorf("%s not found on PATH: %w", bin, err))
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = filepath.Dir(srcPath)
	}
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return "", project.ResourceError(ErrConverterUnavailable, fmt.Errorf("create work dir %s: %w", workDir, err))
	}

	dstPath := filepath.Join(workDir, strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))+".canonical.wav")

	args := []string{
		"-y", "-i", srcPath,
		"-ar", strconv.Itoa(CanonicalSampleRate),
		"-ac", strconv.Itoa(CanonicalChannels),
		"-sample_fmt", "s16",
		dstPath,
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", project.ResourceError(ErrConverterUnavailable, fmt.Errorf("ffmpeg failed: %w: %s", err, string(out)))
	}

	return dstPath, nil
}
