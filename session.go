package foxlang

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/midbel/foxlang/config"
	"github.com/midbel/foxlang/environ"
	"github.com/midbel/foxlang/fox"
	"github.com/midbel/foxlang/store"
)

var ErrNoStore = errors.New("no script store configured")

// Session evaluates programs in a root environment living as long as the
// session itself.
type Session struct {
	ID     string
	Config *config.Config
	Logger *slog.Logger

	env    environ.Environment[fox.Value]
	interp *fox.Interpreter
	store  *store.Store
}

// NewSession creates a session from cfg. Logs are written to w.
func NewSession(cfg *config.Config, w io.Writer) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	id := uuid.NewString()
	logger, err := NewLogger(cfg, w)
	if err != nil {
		return nil, err
	}
	logger = logger.With(slog.String("session", id))

	s := Session{
		ID:     id,
		Config: cfg,
		Logger: logger,
		env:    environ.Empty[fox.Value](),
	}
	s.interp = fox.NewInterpreter(fox.Options{
		MaxDepth:      cfg.MaxDepth,
		MaxStringSize: cfg.MaxStringSize,
		StringOrder:   stringOrder(cfg.StringOrder),
		Logger:        logger,
	})
	for name, value := range cfg.Globals {
		if err := s.Define(name, value); err != nil {
			return nil, fmt.Errorf("global %s: %w", name, err)
		}
	}
	return &s, nil
}

func stringOrder(str string) fox.StringOrder {
	if strings.EqualFold(str, fox.LexicalOrder.String()) {
		return fox.LexicalOrder
	}
	return fox.HashOrder
}

// Define binds a go value in the root environment.
func (s *Session) Define(name string, value any) error {
	v, err := fox.ValueOf(value)
	if err != nil {
		return err
	}
	s.env.Define(name, v)
	return nil
}

func (s *Session) Lookup(name string) (fox.Value, error) {
	return s.env.Lookup(name)
}

func (s *Session) Parse(r io.Reader) (fox.Program, error) {
	scan, err := fox.Scan(r)
	if err != nil {
		return fox.Program{}, err
	}
	p := fox.NewParser(scan)
	if s.Config.MaxNesting != 0 {
		p.MaxNesting = s.Config.MaxNesting
	}
	return p.Parse()
}

// Run parses and evaluates the program read from r.
func (s *Session) Run(r io.Reader) (fox.Value, error) {
	prog, err := s.Parse(r)
	if err != nil {
		s.Logger.Debug("parsing failed", slog.Any("err", err))
		return nil, err
	}
	s.Logger.Debug("evaluating program", slog.Int("statements", len(prog.Body)))
	value, err := s.interp.Evaluate(prog, s.env)
	if err != nil {
		s.Logger.Debug("evaluation failed", slog.Any("err", err))
		return nil, err
	}
	return value, nil
}

func (s *Session) RunString(src string) (fox.Value, error) {
	return s.Run(strings.NewReader(src))
}

// Store opens the script store named in the configuration on first use.
func (s *Session) Store() (*store.Store, error) {
	if s.store != nil {
		return s.store, nil
	}
	if s.Config.Store == "" {
		return nil, ErrNoStore
	}
	db, err := store.Open(s.Config.Store)
	if err != nil {
		return nil, err
	}
	s.Logger.Debug("script store opened", slog.String("path", s.Config.Store))
	s.store = db
	return db, nil
}

// RunScript evaluates a script of the store and records its result.
func (s *Session) RunScript(name string) (fox.Value, error) {
	db, err := s.Store()
	if err != nil {
		return nil, err
	}
	src, err := db.Get(name)
	if err != nil {
		return nil, err
	}
	value, err := s.RunString(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	res := store.Result{
		Value:   value.String(),
		Type:    value.Type(),
		Session: s.ID,
	}
	if err := db.SaveResult(name, res); err != nil {
		return value, err
	}
	s.Logger.Info("script evaluated", slog.String("script", name), slog.String("type", value.Type()))
	return value, nil
}

func (s *Session) Close() error {
	if s.store == nil {
		return nil
	}
	err := s.store.Close()
	s.store = nil
	return err
}
