package render

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/angstromgo/angstrom"
	"github.com/pelletier/go-toml"
)

// Blender invokes an external Blender process to render molecules. Each
// render run gets its own settings file, so concurrent runs with different
// configurations don't step on each other.
type Blender struct {
	Config *Config
}

// NewBlender returns a renderer around cfg, or around DefaultConfig() if
// cfg is nil.
func NewBlender(cfg *Config) *Blender {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Blender{Config: cfg}
}

// settings is what gets serialized for the Blender-side script: the run
// configuration plus the resolved model.
type settings struct {
	Config *Config `toml:"config"`
	Model  *Model  `toml:"model"`
}

// Run renders the structure in molfile to the image imgfile by launching
// Blender in background mode with the configured script. The settings are
// passed through a temporary TOML file which is removed when the run ends.
func (B *Blender) Run(molfile, imgfile string) error {
	model, err := ModelByName(B.Config.Model)
	if err != nil {
		return err
	}
	cfg := *B.Config //shallow copy; we only touch the file fields
	cfg.MolFile = molfile
	cfg.ImgFile = imgfile
	tmp, err := os.CreateTemp("", "render-*.toml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	tmp.Close()
	s := settings{Config: &cfg, Model: model}
	f, err := os.Create(tmp.Name())
	if err != nil {
		return err
	}
	err = toml.NewEncoder(f).Encode(s)
	f.Close()
	if err != nil {
		return err
	}
	args := []string{"-b", "-P", cfg.Script, "--", tmp.Name()}
	cmd := exec.Command(cfg.Executable, args...)
	out, err := cmd.CombinedOutput()
	if cfg.Verbose {
		log.Printf("%s %v\n%s", cfg.Executable, args, out)
	}
	if err != nil {
		return fmt.Errorf("blender run on %s failed: %v (output: %s)", molfile, err, out)
	}
	return nil
}

// RenderTraj renders every frame of the trajectory to numbered png images
// under dir, writing a per-frame xyz file next to each image. It returns
// the image file names in frame order. The trajectory itself is never
// modified, so a failed render leaves it intact.
func (B *Blender) RenderTraj(traj *angstrom.Trajectory, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	images := make([]string, 0, traj.Len())
	for i := 0; i < traj.Len(); i++ {
		mol, err := traj.Frame(i)
		if err != nil {
			return nil, err
		}
		molfile := filepath.Join(dir, fmt.Sprintf("frame_%06d.xyz", i))
		imgfile := filepath.Join(dir, fmt.Sprintf("frame_%06d.png", i))
		if err := mol.XYZWrite(molfile, fmt.Sprintf("frame %d", i)); err != nil {
			return nil, err
		}
		if B.Config.Verbose {
			log.Printf("frame %d: %d atoms, %d bonds", i, mol.Len(), len(mol.Bonds()))
		}
		if err := B.Run(molfile, imgfile); err != nil {
			return nil, err
		}
		images = append(images, imgfile)
	}
	return images, nil
}

// Video stitches the numbered frame images under dir into a video file
// with ffmpeg. pattern is an ffmpeg input pattern such as frame_%06d.png.
func Video(dir, pattern, out string, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	args := []string{
		"-y",
		"-framerate", fmt.Sprintf("%d", fps),
		"-i", filepath.Join(dir, pattern),
		"-pix_fmt", "yuv420p",
		out,
	}
	cmd := exec.Command("ffmpeg", args...)
	o, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %v (output: %s)", err, o)
	}
	return nil
}
