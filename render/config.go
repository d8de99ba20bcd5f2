// Package render hands molecules and trajectories to an external Blender
// process for image and video generation. The core data structures never
// depend on the renderer: a failed render leaves the Trajectory/Molecule
// that was being drawn untouched.
package render

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Config holds the renderer settings: executable, camera, lighting, output
// and molecular model. It can be instanced fresh through DefaultConfig or
// decoded from a TOML file through ReadConfig.
type Config struct {
	// Executable is the Blender binary to invoke.
	Executable string `toml:"executable"`

	// Script is the Blender-side python script driving the import and render.
	Script string `toml:"script"`

	// Model is the molecular representation model: default, ball_and_stick,
	// space_filling, stick or surface.
	Model string `toml:"model"`

	// Resolution is the image width and height in pixels, as a
	// two-element slice.
	Resolution []int `toml:"resolution"`

	// CameraZoom makes the molecule smaller as it gets bigger.
	CameraZoom float64 `toml:"camera_zoom"`

	// CameraType is ORTHO or PERSP.
	CameraType string `toml:"camera_type"`

	// CameraView is the view plane: xy, xz, yx, yz, zx or zy.
	CameraView string `toml:"camera_view"`

	// CameraDistance is the camera distance from the origin.
	CameraDistance float64 `toml:"camera_distance"`

	// Brightness is the environment lighting factor.
	Brightness float64 `toml:"brightness"`

	// Lamp is the lamp energy.
	Lamp float64 `toml:"lamp"`

	// BackgroundColor is an RGB triplet; empty means transparent.
	BackgroundColor []float64 `toml:"background_color"`

	// Center positions the molecule at the origin before rendering.
	Center bool `toml:"center"`

	// Render can be disabled to only prepare the scene (with Save set).
	Render bool `toml:"render"`

	// Save is a .blend file to save the scene to; empty means don't save.
	Save string `toml:"save"`

	Verbose bool `toml:"verbose"`

	// MolFile and ImgFile are the input structure and output image for one
	// render run; Run fills them per frame.
	MolFile string `toml:"mol_file"`
	ImgFile string `toml:"img_file"`
}

// DefaultConfig returns the default renderer settings. The value is built
// fresh on every call, so mutating one returned Config can never leak into
// another.
func DefaultConfig() *Config {
	return &Config{
		Executable:     "blender",
		Script:         "blender_render.py",
		Model:          "default",
		Resolution:     []int{1920, 1080},
		CameraZoom:     20,
		CameraType:     "ORTHO",
		CameraView:     "xy",
		CameraDistance: 10,
		Brightness:     1.0,
		Lamp:           2.0,
		Center:         true,
		Render:         true,
	}
}

// ReadConfig opens and decodes a TOML configuration file.
func ReadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := DefaultConfig()
	dec := toml.NewDecoder(f)
	err = dec.Decode(c)
	if err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate rejects configurations no render run could use.
func (c *Config) validate() error {
	if _, err := ModelByName(c.Model); err != nil {
		return err
	}
	if len(c.Resolution) != 2 {
		return fmt.Errorf("resolution must have exactly 2 elements, got %d", len(c.Resolution))
	}
	if c.Resolution[0] <= 0 || c.Resolution[1] <= 0 {
		return fmt.Errorf("resolution %v must be positive", c.Resolution)
	}
	return nil
}

// Write encodes the configuration to a TOML file, overwriting it.
func (c *Config) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(c)
}

// Model holds the Blender-side molecular representation settings.
type Model struct {
	UseCenter        bool    `toml:"use_center"`         // Position object to origin
	UseCamera        bool    `toml:"use_camera"`         // Add camera
	UseLamp          bool    `toml:"use_lamp"`           // Add lamp
	Ball             string  `toml:"ball"`               // Type of ball -> 0: NURBS | 1: Mesh | 2: Meta
	MeshAzimuth      int     `toml:"mesh_azimuth"`       // Number of sectors (azimuth)
	MeshZenith       int     `toml:"mesh_zenith"`        // Number of sectors (zenith)
	ScaleBallRadius  float64 `toml:"scale_ballradius"`   // Scale factor for all atom radii
	ScaleDistances   float64 `toml:"scale_distances"`    // Scale factor for all distances
	AtomRadius       string  `toml:"atomradius"`         // Type of radius -> 0: Pre-defined | 1: Atomic | 2: van der Waals
	UseSticks        bool    `toml:"use_sticks"`         // Use bonds as cylinders
	SticksType       string  `toml:"use_sticks_type"`    // 0: Dupliverts | 1: Skin | 2: Normal
	SticksSectors    int     `toml:"sticks_sectors"`     // Number of sectors of a stick
	SticksRadius     float64 `toml:"sticks_radius"`      // Radius of a stick
	SticksUnitLength float64 `toml:"sticks_unit_length"` // Length of the unit of a stick in Angstrom
	UseSticksColor   bool    `toml:"use_sticks_color"`   // Sticks appear in the color of the atoms
	UseSticksSmooth  bool    `toml:"use_sticks_smooth"`  // Sticks are round, sectors not visible
	SticksDist       float64 `toml:"sticks_dist"`        // Distance between sticks, in stick diameters
}

// baseModel is the default representation; every named model starts from it.
func baseModel() *Model {
	return &Model{
		UseCenter:        true,
		Ball:             "0",
		MeshAzimuth:      32,
		MeshZenith:       32,
		ScaleBallRadius:  0.5,
		ScaleDistances:   1,
		AtomRadius:       "2",
		UseSticks:        true,
		SticksType:       "0",
		SticksSectors:    20,
		SticksRadius:     0.25,
		SticksUnitLength: 0.05,
		UseSticksColor:   true,
		UseSticksSmooth:  true,
		SticksDist:       1.1,
	}
}

// ModelByName returns the settings for the named molecular representation
// model. The value is constructed fresh on every call; callers may modify
// it freely.
func ModelByName(name string) (*Model, error) {
	m := baseModel()
	switch name {
	case "default":
	case "ball_and_stick":
		m.ScaleBallRadius = 0.5
		m.SticksRadius = 0.2
	case "space_filling":
		m.ScaleBallRadius = 1
		m.AtomRadius = "2"
		m.UseSticks = false
	case "stick":
		m.ScaleBallRadius = 0.0
		m.SticksRadius = 0.2
		m.SticksType = "0"
	case "surface":
		m.Ball = "2"
		m.UseSticks = false
	default:
		return nil, fmt.Errorf("model `%s` doesn't exist", name)
	}
	return m, nil
}
