// internal/adapters/python/scripts.go
package python

// Snippets run with `python -c`. Module names arrive through sys.argv, never
// through string interpolation.

// Exit codes shared by the load snippets.
const (
	exitLoaded     = 0
	exitImportFail = 3
	exitOtherFail  = 4
)

const inspectScript = `import json, platform, sys
print(json.dumps({
    "version": "%d.%d.%d" % tuple(sys.version_info[:3]),
    "executable": sys.executable,
    "prefix": sys.prefix,
    "machine": platform.machine(),
    "platform": platform.system(),
}))`

const loadScript = `import importlib, sys
try:
    importlib.import_module(sys.argv[1])
except ImportError:
    sys.exit(3)
except Exception:
    sys.exit(4)`

const findSpecScript = `import importlib.util, sys
try:
    found = importlib.util.find_spec(sys.argv[1]) is not None
except ImportError:
    sys.exit(3)
except Exception:
    sys.exit(4)
sys.exit(0 if found else 3)`

const versionScript = `import importlib, sys
module = importlib.import_module(sys.argv[1])
value = getattr(module, "__version__", None)
print("" if value is None else str(value))`

const importScript = `import importlib, sys
try:
    importlib.import_module(sys.argv[1])
except ImportError as exc:
    print(exc)
    sys.exit(3)
except Exception as exc:
    print("%s: %s" % (type(exc).__name__, exc))
    sys.exit(4)`
