package commands

const (
	_etc = "/usr/local/etc/workbook"
	_var = "/usr/local/var/workbook"

	DEFAULT_WORKDIR = _var
	DEFAULT_CONFIG  = _etc + "/graph.toml"
)
