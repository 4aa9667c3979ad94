package resolver

import "path/filepath"

// builtins lists the Node environment built-ins that can be substituted
// with bundled shim modules. Only top-level names appear here; subpath
// references like "fs/promises" are not shimmed.
var builtins = []string{
	"assert",
	"buffer",
	"console",
	"constants",
	"crypto",
	"events",
	"fs",
	"http",
	"https",
	"os",
	"path",
	"process",
	"punycode",
	"querystring",
	"stream",
	"string_decoder",
	"timers",
	"tty",
	"url",
	"util",
	"vm",
	"zlib",
}

// builtinShims maps every shimmable built-in to its replacement module
// under shimDir. The shim files are trusted to exist; resolution returns
// them without probing the filesystem.
func builtinShims(shimDir string) map[string]string {
	shims := make(map[string]string, len(builtins))
	for _, name := range builtins {
		shims[name] = filepath.Join(shimDir, name+".js")
	}
	return shims
}
