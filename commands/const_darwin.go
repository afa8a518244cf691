package commands

const (
	_etc = "/usr/local/etc/com.github.workbooktools"
	_var = "/usr/local/var/com.github.workbooktools"

	DEFAULT_WORKDIR = _var
	DEFAULT_CONFIG  = _etc + "/graph.toml"
)
