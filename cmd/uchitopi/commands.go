package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dukerupert/uchitopi/internal/model"
	"github.com/dukerupert/uchitopi/internal/service"
)

// serviceCommands maps "<group> <action>" to a handler taking the remaining
// arguments. min and max bound the argument count.
var serviceCommands = map[string]struct {
	min, max int
	run      func(s *service.Services, args []string, out io.Writer) error
}{
	"user register": {1, 2, func(s *service.Services, args []string, out io.Writer) error {
		var email *string
		if len(args) == 2 {
			email = &args[1]
		}
		u, err := s.Users.Register(args[0], email)
		if err != nil {
			return err
		}
		return writeJSON(out, u)
	}},
	"user token": {2, 2, func(s *service.Services, args []string, out io.Writer) error {
		return s.Users.AddFCMToken(args[0], args[1])
	}},
	"family create": {2, 2, func(s *service.Services, args []string, out io.Writer) error {
		f, err := s.Families.CreateFamily(args[0], args[1])
		if err != nil {
			return err
		}
		return writeJSON(out, f)
	}},
	"family join": {2, 4, func(s *service.Services, args []string, out io.Writer) error {
		role := model.RoleGuest
		if len(args) > 2 {
			if err := role.UnmarshalText([]byte(args[2])); err != nil {
				return err
			}
		}
		var nickname string
		if len(args) > 3 {
			nickname = args[3]
		}
		m, err := s.Families.JoinByInviteCode(args[0], args[1], role, nickname)
		if err != nil {
			return err
		}
		return writeJSON(out, m)
	}},
	"family invite": {2, 2, func(s *service.Services, args []string, out io.Writer) error {
		code, err := s.Families.RegenerateInviteCode(args[0], args[1])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, code)
		return err
	}},
	"family members": {1, 1, func(s *service.Services, args []string, out io.Writer) error {
		members, err := s.Families.Members(args[0])
		if err != nil {
			return err
		}
		return writeJSON(out, members)
	}},
	"thread create": {3, 3, func(s *service.Services, args []string, out io.Writer) error {
		t, err := s.Threads.CreateThread(args[0], args[1], args[2], nil)
		if err != nil {
			return err
		}
		return writeJSON(out, t)
	}},
	"thread post": {3, 3, func(s *service.Services, args []string, out io.Writer) error {
		m, err := s.Threads.PostMessage(args[0], args[1], args[2], nil)
		if err != nil {
			return err
		}
		return writeJSON(out, m)
	}},
	"thread messages": {1, 2, func(s *service.Services, args []string, out io.Writer) error {
		var limit int
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse limit: %w", err)
			}
			limit = n
		}
		msgs, err := s.Threads.Messages(args[0], limit)
		if err != nil {
			return err
		}
		return writeJSON(out, msgs)
	}},
	"thread read": {3, 3, func(s *service.Services, args []string, out io.Writer) error {
		_, err := s.Threads.MarkRead(args[0], args[1], args[2])
		return err
	}},
	"thread archive": {1, 1, func(s *service.Services, args []string, out io.Writer) error {
		return s.Threads.Archive(args[0])
	}},
	"topic create": {3, 3, func(s *service.Services, args []string, out io.Writer) error {
		t, err := s.Topics.CreateTopic(service.TopicInput{FamilyID: args[0], Title: args[1], CreatedBy: args[2]})
		if err != nil {
			return err
		}
		return writeJSON(out, t)
	}},
	"topic convert": {2, 2, func(s *service.Services, args []string, out io.Writer) error {
		t, err := s.Topics.ConvertMessageToTask(args[0], args[1])
		if err != nil {
			return err
		}
		return writeJSON(out, t)
	}},
	"topic status": {2, 2, func(s *service.Services, args []string, out io.Writer) error {
		var status model.TopicStatus
		if err := status.UnmarshalText([]byte(args[1])); err != nil {
			return err
		}
		t, err := s.Topics.UpdateStatus(args[0], status)
		if err != nil {
			return err
		}
		return writeJSON(out, t)
	}},
	"topic list": {1, 1, func(s *service.Services, args []string, out io.Writer) error {
		topics, err := s.Topics.Topics(args[0])
		if err != nil {
			return err
		}
		return writeJSON(out, topics)
	}},
	"notify send": {4, 5, func(s *service.Services, args []string, out io.Writer) error {
		var kind model.NotificationKind
		if err := kind.UnmarshalText([]byte(args[2])); err != nil {
			return err
		}
		var body string
		if len(args) == 5 {
			body = args[4]
		}
		n, err := s.Notifications.Notify(args[0], args[1], kind, args[3], body, nil)
		if err != nil {
			return err
		}
		return writeJSON(out, n)
	}},
	"notify unread": {1, 1, func(s *service.Services, args []string, out io.Writer) error {
		unread, err := s.Notifications.Unread(args[0])
		if err != nil {
			return err
		}
		return writeJSON(out, unread)
	}},
	"notify read": {1, 1, func(s *service.Services, args []string, out io.Writer) error {
		_, err := s.Notifications.MarkRead(args[0])
		return err
	}},
}

func runService(a *app, group string, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := serviceCommands[group+" "+args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q: %w", group+" "+args[0], errUsage)
	}
	rest := args[1:]
	if len(rest) < cmd.min || len(rest) > cmd.max {
		return errUsage
	}
	return cmd.run(a.svc, rest, out)
}
