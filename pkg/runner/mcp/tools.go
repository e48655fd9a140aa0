package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerRecordMoodTool(srv, svc)
	registerGetDayTool(srv, svc)
	registerMonthSummaryTool(srv, svc)
	registerMonthCalendarTool(srv, svc)
}

func registerRecordMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"record_mood",
		mcp.WithDescription("Record or update the mood score and note for a day. Future days are rejected."),
		mcp.WithNumber("mood",
			mcp.Required(),
			mcp.Description("Mood score from 0 (low) to 100 (high); rounded and clamped."),
		),
		mcp.WithString("date",
			mcp.Description("Day to record as YYYY-MM-DD. Defaults to today."),
		),
		mcp.WithString("note",
			mcp.Description("Optional note for the day."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Mood *float64 `json:"mood"`
			Date string   `json:"date"`
			Note string   `json:"note"`
		}

		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Mood == nil {
			return mcp.NewToolResultError("mood is required"), nil
		}

		e, err := svc.RecordMood(ctx, strings.TrimSpace(args.Date), *args.Mood, args.Note)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(e)
	})
}

func registerGetDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_day",
		mcp.WithDescription("Get one calendar day with its entry, if any."),
		mcp.WithString("date",
			mcp.Description("Day as YYYY-MM-DD. Defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := strings.TrimSpace(request.GetString("date", ""))
		dto, err := svc.GetDay(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMonthSummaryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"month_summary",
		mcp.WithDescription("Count the days logged in a month and their rounded average mood."),
		mcp.WithString("month",
			mcp.Description("Month as YYYY-MM. Defaults to the current month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month := strings.TrimSpace(request.GetString("month", ""))
		sum, err := svc.MonthSummary(ctx, month)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(sum)
	})
}

func registerMonthCalendarTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"month_calendar",
		mcp.WithDescription("Lay out every day of a month with mood colours and the month summary."),
		mcp.WithString("month",
			mcp.Description("Month as YYYY-MM. Defaults to the current month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month := strings.TrimSpace(request.GetString("month", ""))
		cal, err := svc.MonthCalendar(ctx, month)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(cal)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
