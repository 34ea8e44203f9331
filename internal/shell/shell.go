package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/auth"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
	getView "github.com/m04kA/SMC-BookingBrowser/internal/usecase/get_view"
	"github.com/m04kA/SMC-BookingBrowser/pkg/ptr"
)

const helpText = `Команды:
  tab <resources|calendar|profile>   переключить вкладку
  filter <all|venues|work|health|auto|lodging>
  date <день>                        выбрать дату, например: date 15
  slot <ЧЧ:ММ> | slot -              выбрать или сбросить время
  select <id>                        открыть карточку ресурса
  back                               вернуться к списку
  confirm                            подтвердить бронирование
  view                               показать текущий экран
  help                               эта справка
  quit                               выход
`

// Shell интерактивная консоль одной сессии
type Shell struct {
	gate  Gate
	store Store
	view  ViewBuilder
	out   io.Writer
}

// New создает консоль
func New(gate Gate, store Store, view ViewBuilder, out io.Writer) *Shell {
	return &Shell{
		gate:  gate,
		store: store,
		view:  view,
		out:   out,
	}
}

// Login отправляет форму и ждет завершения проверки
func (s *Shell) Login(ctx context.Context, login, password string) error {
	if s.gate.AttemptLogin(login, password) == auth.OutcomeRejected {
		return ErrNotAuthenticated
	}

	fmt.Fprintln(s.out, "Проверка...")
	ok, err := s.gate.Wait(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAuthenticated
	}
	return nil
}

// Run читает команды построчно до quit или конца ввода
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	if err := s.Render(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		quit, err := s.Exec(ctx, scanner.Text())
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(s.out, "Ошибка: %s\n", describe(err))
		}
		if quit {
			return nil
		}
	}
}

// Exec выполняет одну команду
func (s *Shell) Exec(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit", "q":
		return true, nil

	case "help", "?":
		fmt.Fprint(s.out, helpText)
		return false, nil

	case "view", "v":
		return false, s.Render(ctx)

	case "tab":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: tab <resources|calendar|profile>", ErrUsage)
		}
		tab, err := domain.ParseTab(args[0])
		if err != nil {
			return false, err
		}
		s.store.SetActiveTab(tab)

	case "filter":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: filter <name>", ErrUsage)
		}
		filter, err := domain.ParseFilter(args[0])
		if err != nil {
			return false, err
		}
		s.store.SetSelectedFilter(filter)

	case "date":
		if len(args) == 0 {
			return false, fmt.Errorf("%w: date <day>", ErrUsage)
		}
		s.store.SetSelectedDate(dateLabel(args))

	case "slot":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: slot <HH:MM> | slot -", ErrUsage)
		}
		if args[0] == "-" {
			s.store.SetSelectedTimeSlot(nil)
		} else {
			s.store.SetSelectedTimeSlot(ptr.Ptr(args[0]))
		}

	case "select", "open":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: select <id>", ErrUsage)
		}
		res, err := s.store.ResourceByID(args[0])
		if err != nil {
			return false, err
		}
		s.store.SelectResource(res)

	case "back":
		s.store.ClearResourceSelection()

	case "confirm":
		c, err := s.store.ConfirmBooking(ctx)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, c.Message())

	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	return false, s.Render(ctx)
}

// Render печатает текущий экран
func (s *Shell) Render(ctx context.Context) error {
	resp, err := s.view.Execute(ctx, &getView.Request{
		Store:    s.store,
		UserName: s.gate.State().Login,
	})
	if err != nil {
		return err
	}
	render(s.out, resp)
	return nil
}

// dateLabel принимает номер дня или полную метку: "15" и "15 янв" дают "15 янв"
func dateLabel(args []string) string {
	if len(args) == 1 && domain.DayNumber(args[0]) == args[0] {
		return domain.DayLabel(args[0])
	}
	return strings.Join(args, " ")
}

func describe(err error) string {
	switch {
	case errors.Is(err, session.ErrIncompleteSelection):
		return "выберите ресурс и время"
	case errors.Is(err, session.ErrResourceNotFound):
		return "ресурс не найден"
	case errors.Is(err, domain.ErrUnknownTab):
		return "неизвестная вкладка"
	case errors.Is(err, domain.ErrUnknownFilter):
		return "неизвестный фильтр"
	case errors.Is(err, ErrUnknownCommand):
		return "неизвестная команда, help - список команд"
	default:
		return err.Error()
	}
}
