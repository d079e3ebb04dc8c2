package lint

// builtinExceptionParent maps each builtin exception class to its direct
// ancestor, following the documented CPython hierarchy. Used for the
// conservative "would this handler catch that exception" relation: only
// builtin names participate in subtyping, so unusual user hierarchies
// produce false negatives rather than false positives.
var builtinExceptionParent = map[string]string{
	"SystemExit":        "BaseException",
	"KeyboardInterrupt": "BaseException",
	"GeneratorExit":     "BaseException",
	"Exception":         "BaseException",

	"StopIteration":      "Exception",
	"StopAsyncIteration": "Exception",
	"ArithmeticError":    "Exception",
	"AssertionError":     "Exception",
	"AttributeError":     "Exception",
	"BufferError":        "Exception",
	"EOFError":           "Exception",
	"ImportError":        "Exception",
	"LookupError":        "Exception",
	"MemoryError":        "Exception",
	"NameError":          "Exception",
	"OSError":            "Exception",
	"ReferenceError":     "Exception",
	"RuntimeError":       "Exception",
	"SyntaxError":        "Exception",
	"SystemError":        "Exception",
	"TypeError":          "Exception",
	"ValueError":         "Exception",
	"Warning":            "Exception",

	"FloatingPointError":  "ArithmeticError",
	"OverflowError":       "ArithmeticError",
	"ZeroDivisionError":   "ArithmeticError",
	"ModuleNotFoundError": "ImportError",
	"IndexError":          "LookupError",
	"KeyError":            "LookupError",
	"UnboundLocalError":   "NameError",
	"NotImplementedError": "RuntimeError",
	"RecursionError":      "RuntimeError",
	"IndentationError":    "SyntaxError",
	"TabError":            "IndentationError",
	"UnicodeError":        "ValueError",

	"BlockingIOError":    "OSError",
	"ChildProcessError":  "OSError",
	"ConnectionError":    "OSError",
	"FileExistsError":    "OSError",
	"FileNotFoundError":  "OSError",
	"InterruptedError":   "OSError",
	"IsADirectoryError":  "OSError",
	"NotADirectoryError": "OSError",
	"PermissionError":    "OSError",
	"ProcessLookupError": "OSError",
	"TimeoutError":       "OSError",

	"BrokenPipeError":        "ConnectionError",
	"ConnectionAbortedError": "ConnectionError",
	"ConnectionRefusedError": "ConnectionError",
	"ConnectionResetError":   "ConnectionError",

	"UnicodeDecodeError":    "UnicodeError",
	"UnicodeEncodeError":    "UnicodeError",
	"UnicodeTranslateError": "UnicodeError",

	"DeprecationWarning":        "Warning",
	"PendingDeprecationWarning": "Warning",
	"UserWarning":               "Warning",
	"RuntimeWarning":            "Warning",
	"FutureWarning":             "Warning",
	"ImportWarning":             "Warning",
	"BytesWarning":              "Warning",
	"ResourceWarning":           "Warning",
	"SyntaxWarning":             "Warning",
	"UnicodeWarning":            "Warning",
}

// builtinExceptionAlias normalizes the legacy OSError aliases.
var builtinExceptionAlias = map[string]string{
	"IOError":          "OSError",
	"EnvironmentError": "OSError",
	"WindowsError":     "OSError",
}

// NormalizeExceptionName resolves legacy aliases (IOError and friends) to
// their canonical builtin name. Unknown names pass through unchanged.
func NormalizeExceptionName(name string) string {
	if canon, ok := builtinExceptionAlias[name]; ok {
		return canon
	}
	return name
}

// IsBuiltinException reports whether name (after alias normalization) is a
// builtin exception class the engine knows the hierarchy of.
func IsBuiltinException(name string) bool {
	name = NormalizeExceptionName(name)
	if name == "BaseException" {
		return true
	}
	_, ok := builtinExceptionParent[name]
	return ok
}

// CoversException reports whether a handler naming catcher would also
// catch an exception of class exc. The relation is deliberately
// conservative: exact name matches always cover; ancestry is consulted
// only when both names are known builtins.
func CoversException(catcher, exc string) bool {
	catcher = NormalizeExceptionName(catcher)
	exc = NormalizeExceptionName(exc)
	if catcher == exc {
		return true
	}
	if !IsBuiltinException(catcher) || !IsBuiltinException(exc) {
		return false
	}
	for cur := exc; cur != ""; cur = builtinExceptionParent[cur] {
		if cur == catcher {
			return true
		}
	}
	return false
}
