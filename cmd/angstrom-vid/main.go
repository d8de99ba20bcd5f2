// angstrom-vid renders an xyz structure or trajectory to images and,
// optionally, a rotation video, by driving an external Blender process.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/angstromgo/angstrom"
	"github.com/angstromgo/angstrom/render"
	v3 "github.com/angstromgo/angstrom/v3"
)

var (
	configFile    string
	exe           string
	script        string
	model         string
	zoom          float64
	view          string
	distance      float64
	camera        string
	brightness    float64
	lamp          float64
	resolution    string
	bcolor        string
	save          string
	outdir        string
	video         string
	fps           int
	noRender      bool
	verbose       bool
	rotFrames     int
	rotAngle      float64
	rotAxis       string
	interpolation string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "angstrom-vid [xyz file]",
		Short: "render molecular structures and trajectories with Blender",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	f := rootCmd.Flags()
	f.StringVar(&configFile, "config", "", "TOML configuration file; flags override it")
	f.StringVar(&exe, "exe", "", "blender executable")
	f.StringVar(&script, "script", "", "blender-side render script")
	f.StringVar(&model, "model", "", "molecular model: default, ball_and_stick, space_filling, stick, surface")
	f.Float64Var(&zoom, "zoom", 0, "camera zoom")
	f.StringVar(&view, "view", "", "camera view plane: xy, xz, yx, yz, zx, zy")
	f.Float64Var(&distance, "distance", 0, "camera distance")
	f.StringVar(&camera, "camera", "", "camera type: ORTHO or PERSP")
	f.Float64Var(&brightness, "brightness", 0, "environment lighting")
	f.Float64Var(&lamp, "lamp", 0, "lamp energy")
	f.StringVar(&resolution, "resolution", "", "image resolution as WxH, e.g. 1920x1080")
	f.StringVar(&bcolor, "bcolor", "", "background color as r,g,b in [0,1]; empty for transparent")
	f.StringVar(&save, "save", "", "save the Blender scene to this .blend file")
	f.StringVar(&outdir, "outdir", "frames", "directory for per-frame xyz and png files")
	f.StringVar(&video, "video", "", "stitch the rendered frames into this video file")
	f.IntVar(&fps, "fps", 30, "video frame rate")
	f.BoolVar(&noRender, "no-render", false, "prepare scenes without rendering images")
	f.BoolVar(&verbose, "verbose", false, "print progress and subprocess output")
	f.IntVar(&rotFrames, "frames", 0, "rotate the structure over this many frames")
	f.Float64Var(&rotAngle, "angle", 360, "total rotation angle in degrees")
	f.StringVar(&rotAxis, "axis", "0,0,1", "rotation axis direction as x,y,z through the origin")
	f.StringVar(&interpolation, "interpolation", angstrom.InterLinear, "rotation interpolation: linear or sine")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	traj, err := loadTrajectory(args[0])
	if err != nil {
		return err
	}
	if verbose {
		log.Println(traj.String())
	}
	B := render.NewBlender(cfg)
	if _, err := B.RenderTraj(traj, outdir); err != nil {
		return err
	}
	if video != "" {
		return render.Video(outdir, "frame_%06d.png", video, fps)
	}
	return nil
}

// buildConfig layers the settings: defaults, then the TOML file if given,
// then any flag the user set explicitly.
func buildConfig(cmd *cobra.Command) (*render.Config, error) {
	cfg := render.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = render.ReadConfig(configFile)
		if err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("exe") {
		cfg.Executable = exe
	}
	if flags.Changed("script") {
		cfg.Script = script
	}
	if flags.Changed("model") {
		cfg.Model = model
	}
	if flags.Changed("zoom") {
		cfg.CameraZoom = zoom
	}
	if flags.Changed("view") {
		cfg.CameraView = view
	}
	if flags.Changed("distance") {
		cfg.CameraDistance = distance
	}
	if flags.Changed("camera") {
		cfg.CameraType = camera
	}
	if flags.Changed("brightness") {
		cfg.Brightness = brightness
	}
	if flags.Changed("lamp") {
		cfg.Lamp = lamp
	}
	if flags.Changed("save") {
		cfg.Save = save
	}
	if flags.Changed("no-render") {
		cfg.Render = !noRender
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("resolution") {
		w, h, err := parseResolution(resolution)
		if err != nil {
			return nil, err
		}
		cfg.Resolution = []int{w, h}
	}
	if flags.Changed("bcolor") {
		rgb, err := parseFloats(bcolor, 3)
		if err != nil {
			return nil, fmt.Errorf("bad --bcolor: %v", err)
		}
		cfg.BackgroundColor = rgb
	}
	if _, err := render.ModelByName(cfg.Model); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadTrajectory reads the input file. With --frames set, only the first
// frame is used and the returned trajectory is its rotation around the
// given axis; otherwise the file's own frames are returned.
func loadTrajectory(name string) (*angstrom.Trajectory, error) {
	if rotFrames <= 0 {
		return angstrom.XYZTrajRead(name)
	}
	mol, err := angstrom.XYZFileRead(name)
	if err != nil {
		return nil, err
	}
	axdir, err := parseFloats(rotAxis, 3)
	if err != nil {
		return nil, fmt.Errorf("bad --axis: %v", err)
	}
	axis, err := v3.NewMatrix(axdir)
	if err != nil {
		return nil, err
	}
	return angstrom.RotationTraj(mol, rotFrames, rotAngle, axis, interpolation)
}

func parseResolution(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("resolution %q is not of the form WxH", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("resolution %q must be positive", s)
	}
	return w, h, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated values, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
