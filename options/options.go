package options

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// DemoOptions holds every setting a demo program reads at startup.
type DemoOptions struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
	VSync  bool   `toml:"vsync" yaml:"vsync"`
	// FrameSleepMS is a fixed sleep after every frame, 0 disables it.
	FrameSleepMS int `toml:"frame_sleep_ms" yaml:"frame_sleep_ms"`

	ShaderDir    string `toml:"shader_dir" yaml:"shader_dir"`
	VertexFile   string `toml:"vertex_file" yaml:"vertex_file"`
	FragmentFile string `toml:"fragment_file" yaml:"fragment_file"`
	Watch        bool   `toml:"watch" yaml:"watch"`

	SpeedStep float64 `toml:"speed_step" yaml:"speed_step"`
	MinSpeed  float64 `toml:"min_speed" yaml:"min_speed"`
	MaxSpeed  float64 `toml:"max_speed" yaml:"max_speed"`

	Record     bool    `toml:"record" yaml:"record"`
	Duration   float64 `toml:"duration" yaml:"duration"`
	FPS        int     `toml:"fps" yaml:"fps"`
	OutputFile string  `toml:"output" yaml:"output"`
	FFMPEGPath string  `toml:"ffmpeg" yaml:"ffmpeg"`
	Codec      string  `toml:"codec" yaml:"codec"`

	ConfigFile string `toml:"-" yaml:"-"`
	Help       bool   `toml:"-" yaml:"-"`
}

// Defaults returns the settings used when neither a config file nor a flag
// overrides them.
func Defaults() DemoOptions {
	return DemoOptions{
		Width:        500,
		Height:       500,
		Title:        "title",
		VSync:        true,
		ShaderDir:    "shaders",
		VertexFile:   "quad.vert",
		FragmentFile: "quad.frag",
		SpeedStep:    0.25,
		MinSpeed:     -4,
		MaxSpeed:     4,
		Duration:     10,
		FPS:          60,
		OutputFile:   "output.mp4",
		Codec:        "h264",
	}
}

// FrameSleep returns FrameSleepMS as a duration.
func (o *DemoOptions) FrameSleep() time.Duration {
	return time.Duration(o.FrameSleepMS) * time.Millisecond
}

// VertexPath returns the vertex shader path relative to the working directory.
func (o *DemoOptions) VertexPath() string {
	return filepath.Join(o.ShaderDir, o.VertexFile)
}

// FragmentPath returns the fragment shader path relative to the working directory.
func (o *DemoOptions) FragmentPath() string {
	return filepath.Join(o.ShaderDir, o.FragmentFile)
}

func bindFlags(fs *flag.FlagSet, o *DemoOptions) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "Path to a TOML or YAML config file")
	fs.BoolVar(&o.Help, "help", o.Help, "Show help message")
	fs.IntVar(&o.Width, "width", o.Width, "Width of the window")
	fs.IntVar(&o.Height, "height", o.Height, "Height of the window")
	fs.StringVar(&o.Title, "title", o.Title, "Window title")
	fs.BoolVar(&o.VSync, "vsync", o.VSync, "Wait for vertical sync on buffer swap")
	fs.IntVar(&o.FrameSleepMS, "sleep", o.FrameSleepMS, "Milliseconds to sleep after each frame")
	fs.StringVar(&o.ShaderDir, "shaders", o.ShaderDir, "Directory holding the shader files")
	fs.StringVar(&o.VertexFile, "vert", o.VertexFile, "Vertex shader file name")
	fs.StringVar(&o.FragmentFile, "frag", o.FragmentFile, "Fragment shader file name")
	fs.BoolVar(&o.Watch, "watch", o.Watch, "Reload shaders when the files change")
	fs.Float64Var(&o.SpeedStep, "speed-step", o.SpeedStep, "Speed change per Left/Right press")
	fs.BoolVar(&o.Record, "record", o.Record, "Enable recording mode")
	fs.Float64Var(&o.Duration, "duration", o.Duration, "Duration to record in seconds")
	fs.IntVar(&o.FPS, "fps", o.FPS, "Frames per second for recording")
	fs.StringVar(&o.OutputFile, "output", o.OutputFile, "Output file name for recording")
	fs.StringVar(&o.FFMPEGPath, "ffmpeg", o.FFMPEGPath, "Path to ffmpeg executable")
	fs.StringVar(&o.Codec, "codec", o.Codec, "Video codec for recording (h264 or hevc)")
}

// Parse builds the options for a demo. Precedence, lowest first: defaults,
// the file named by -config, flags given on the command line.
func Parse(name string, args []string, defaults DemoOptions) (*DemoOptions, error) {
	// First pass only discovers -config.
	probe := defaults
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	bindFlags(fs, &probe)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := defaults
	if probe.ConfigFile != "" {
		if err := LoadFile(probe.ConfigFile, &opts); err != nil {
			return nil, err
		}
	}

	fs = flag.NewFlagSet(name, flag.ContinueOnError)
	bindFlags(fs, &opts)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// PrintDefaults writes the flag usage for a demo to standard error.
func PrintDefaults(name string) {
	o := Defaults()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	bindFlags(fs, &o)
	fs.SetOutput(os.Stderr)
	fs.PrintDefaults()
}

// LoadFile decodes a config file into o. Fields missing from the file keep
// their current values. The format is chosen from the file extension.
func LoadFile(path string, o *DemoOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, o)
	default:
		return fmt.Errorf("unsupported config file type: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate reports settings no demo can run with.
func (o *DemoOptions) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", o.Width, o.Height))
	}
	if o.FrameSleepMS < 0 {
		errs = append(errs, fmt.Errorf("frame sleep must not be negative, got %d", o.FrameSleepMS))
	}
	if o.MinSpeed > o.MaxSpeed {
		errs = append(errs, fmt.Errorf("min speed %v exceeds max speed %v", o.MinSpeed, o.MaxSpeed))
	}
	if o.Record {
		if o.FPS <= 0 {
			errs = append(errs, fmt.Errorf("fps must be positive, got %d", o.FPS))
		}
		if o.Duration <= 0 {
			errs = append(errs, fmt.Errorf("duration must be positive, got %v", o.Duration))
		}
		if o.OutputFile == "" {
			errs = append(errs, errors.New("output file is required when recording"))
		}
	}
	return errors.Join(errs...)
}
