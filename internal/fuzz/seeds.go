package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // ограничение для тестового корпуса
)

var inlineSeeds = []string{
	"",
	"module BlinkC {\n  uses interface Boot;\n}\n",
	"/** Boots.\n * Signalled once. */\nevent void booted();\n",
	"/// first\n/// second\nasync command error_t start();\n",
	"# 12 \"/opt/tinyos/tos/types/TinyError.h\" 3\ntypedef int error_t;\n",
	"#line 7\nx <- y; a..b 1.5e-3 0x1fUL L\"wide\" L'c'\n",
	"/* unterminated",
	"\"unterminated\nint x;\n",
	"char c = '\\'';\n/**/ /***/ /**",
	"x >>= 1; y <<= 2; p->q; ...;\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все исходники nesC и заголовки C
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".nc", ".h", ".c":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
