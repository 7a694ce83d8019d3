package density

// DirPrefix is prepended to a target name to form its resource directory.
const DirPrefix = "mipmap-"

// MinRecommended is the smallest square side that needs no upscaling for
// the largest target.
const MinRecommended = 192

type Target struct {
	Name string
	Size int
}

// Dir returns the resource directory name, e.g. "mipmap-hdpi".
func (t Target) Dir() string {
	return DirPrefix + t.Name
}

// Targets lists every density bucket in generation order.
var Targets = []Target{
	{Name: "mdpi", Size: 48},
	{Name: "hdpi", Size: 72},
	{Name: "xhdpi", Size: 96},
	{Name: "xxhdpi", Size: 144},
	{Name: "xxxhdpi", Size: 192},
}

// FilesPerTarget is the number of icons written into each density directory.
const FilesPerTarget = 2
