package container

import "fmt"

// Options holds the server configuration, filled by humacli from flags and
// SERVICE_* environment variables.
type Options struct {
	Port        int    `default:"8888"    help:"Port to listen on"                                                 short:"p"`
	CodeLength  int    `default:"6"       help:"Length of generated short codes"                                   short:"c"`
	BaseURL     string `default:""        help:"Public base URL of short links, defaults to http://localhost:PORT" short:"b"`
	Allocation  string `default:"atomic"  help:"Short code allocation mode: atomic or legacy"                      short:"a"`
	RedisAddr   string `default:""        help:"Redis address for the analytics stream, in-process when empty"     short:"r"`
	DatabaseURL string `default:""        help:"Postgres URL for analytics events, logged when empty"              short:"d"`
	LogFormat   string `default:"console" help:"Log format: console or json"                                      short:"f"`
	LogLevel    string `default:"info"    help:"Log level: debug, info, warn or error"                             short:"l"`
}

// ShortURLBase returns the prefix that short codes are appended to.
func (o *Options) ShortURLBase() string {
	if o.BaseURL != "" {
		return o.BaseURL
	}

	return fmt.Sprintf("http://localhost:%d", o.Port)
}
