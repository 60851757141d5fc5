package querygen

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/querygen/pkg/util"
)

// Options are the validated parameters of one run.
type Options struct {
	// fields are validated in declaration order, max_node_id is reported first
	MaxNodeID int    `validate:"required,gt=0" flag:"--max_node_id"`
	NumValues int    `validate:"required,gt=0" flag:"--num_values"`
	Output    string `validate:"required_arg" flag:"<output>"`
	Seed      int64
	SeedSet   bool
}

type optionTranslation struct {
	tag  string
	text string
	code error
}

var optionTranslations = []optionTranslation{
	{tag: "required", text: "Missing mandatory option {0} <value>", code: util.ErrMissingOption},
	{tag: "gt", text: "Invalid value for {0}: {1}. It must be a positive number", code: util.ErrInvalidValue},
	{tag: "required_arg", text: "Missing argument {0}", code: util.ErrMissingArgument},
}

func newOptionsValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("flag")
	})
	if err := validate.RegisterValidation("required_arg", func(fl validator.FieldLevel) bool {
		return fl.Field().String() != ""
	}); err != nil {
		return nil, nil, err
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, found := uni.GetTranslator("en")
	if !found {
		return nil, nil, errors.New("en translator not found")
	}
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, err
	}

	for _, tr := range optionTranslations {
		tr := tr
		err := validate.RegisterTranslation(tr.tag, trans,
			func(t ut.Translator) error {
				return t.Add(tr.tag, tr.text, true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				msg, err := t.T(tr.tag, fe.Field(), fmt.Sprint(fe.Value()))
				if err != nil {
					return fe.Error()
				}
				return msg
			})
		if err != nil {
			return nil, nil, err
		}
	}
	return validate, trans, nil
}

func (o Options) validate() error {
	validate, trans, err := newOptionsValidator()
	if err != nil {
		return err
	}

	err = validate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := verrs[0]
	code := util.ErrParse
	for _, tr := range optionTranslations {
		if tr.tag == fe.Tag() {
			code = tr.code
		}
	}
	return util.WrapErrorf(fe, code, "%s", fe.Translate(trans))
}

// positiveInt is a pflag.Value accepting integers greater than zero. The
// first failure is kept so the command can report it instead of the generic
// pflag message.
type positiveInt struct {
	name  string
	short string
	args  []string
	value int
	set   bool
	err   error
}

func newPositiveInt(name, short string, args []string) *positiveInt {
	return &positiveInt{name: name, short: short, args: args}
}

func (p *positiveInt) String() string {
	if !p.set {
		return ""
	}
	return strconv.Itoa(p.value)
}

func (p *positiveInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		p.err = util.WrapErrorf(err, util.ErrParse, "%s",
			util.Capitalize(fmt.Sprintf("invalid argument: %s %s", p.typedSwitch(s), s)))
		return p.err
	}
	if v <= 0 {
		p.err = util.WrapErrorf(nil, util.ErrInvalidValue, "Invalid value for --%s: %d. It must be a positive number", p.name, v)
		return p.err
	}
	p.value = v
	p.set = true
	return nil
}

func (p *positiveInt) Type() string {
	return "VALUE"
}

// typedSwitch returns the spelling ("-m" or "--max_node_id") of the first
// occurrence on the command line that carries value.
func (p *positiveInt) typedSwitch(value string) string {
	long, short := "--"+p.name, "-"+p.short
	for i, arg := range p.args {
		if arg == "--" {
			break
		}
		next := ""
		if i+1 < len(p.args) {
			next = p.args[i+1]
		}

		switch {
		case arg == long && next == value, arg == long+"="+value:
			return long
		case arg == short && next == value,
			strings.HasPrefix(arg, short) && strings.TrimPrefix(strings.TrimPrefix(arg, short), "=") == value:
			return short
		}
	}
	return long
}

var errHelpRequested = errors.New("help requested")

// helpFlag stops flag parsing as soon as -h/--help is reached, so later
// malformed flags are never looked at.
type helpFlag struct {
	requested bool
}

func (h *helpFlag) String() string {
	return strconv.FormatBool(h.requested)
}

func (h *helpFlag) Set(string) error {
	h.requested = true
	return errHelpRequested
}

func (h *helpFlag) Type() string {
	return "bool"
}
