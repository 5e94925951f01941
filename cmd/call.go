package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/devdhirendra/enhanced-ns-sub000/pkg/api"
	"github.com/devdhirendra/enhanced-ns-sub000/pkg/metadata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEndpointsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints [facade]",
		Short: "List the endpoint table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoints := api.Endpoints()
			if len(args) == 1 {
				endpoints = api.EndpointsFor(args[0])
				if len(endpoints) == 0 {
					return fmt.Errorf("unknown facade %q (known: %s)", args[0], strings.Join(api.Facades(), ", "))
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FACADE\tNAME\tMETHOD\tPATH\tAUTH")
			for _, e := range endpoints {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", e.Facade, e.Name, e.Method, e.Path, e.RequiresAuth)
			}
			return w.Flush()
		},
	}
}

func newCallCommand(a *app) *cobra.Command {
	var (
		pathParams  []string
		queryParams []string
		body        string
	)

	cmd := &cobra.Command{
		Use:   "call <facade> <name>",
		Short: "Invoke any endpoint from the table and print the unwrapped result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			callArgs, err := buildArgs(pathParams, queryParams, body)
			if err != nil {
				return err
			}
			for _, status := range unknownStatuses(callArgs.Body) {
				a.logger.Warn("status literal not in any known set; sending as is", zap.String("status", status))
			}

			client, err := a.apiClient()
			if err != nil {
				return err
			}
			raw, err := client.Call(cmd.Context(), args[0], args[1], callArgs)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", args[0], args[1], err)
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
	cmd.Flags().StringArrayVar(&pathParams, "path", nil, "Path parameter as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&queryParams, "query", nil, "Query parameter as key=value (repeatable)")
	cmd.Flags().StringVar(&body, "body", "", "JSON body, or @file to read it from a file")
	return cmd
}

func buildArgs(pathParams, queryParams []string, body string) (api.Args, error) {
	var args api.Args

	if len(pathParams) > 0 {
		args.Path = make(map[string]string, len(pathParams))
		for _, kv := range pathParams {
			key, value, ok := strings.Cut(kv, "=")
			if !ok || key == "" {
				return api.Args{}, fmt.Errorf("--path %q: want key=value", kv)
			}
			args.Path[key] = value
		}
	}

	if len(queryParams) > 0 {
		args.Query = url.Values{}
		for _, kv := range queryParams {
			key, value, ok := strings.Cut(kv, "=")
			if !ok || key == "" {
				return api.Args{}, fmt.Errorf("--query %q: want key=value", kv)
			}
			args.Query.Add(key, value)
		}
	}

	if body != "" {
		data := []byte(body)
		if file, ok := strings.CutPrefix(body, "@"); ok {
			var err error
			if data, err = os.ReadFile(file); err != nil {
				return api.Args{}, fmt.Errorf("read body: %w", err)
			}
		}
		if !json.Valid(data) {
			return api.Args{}, fmt.Errorf("--body is not valid JSON")
		}
		args.Body = json.RawMessage(data)
	}
	return args, nil
}

// unknownStatuses returns top level "status" values that no status set
// recognises.
func unknownStatuses(body any) []string {
	raw, ok := body.(json.RawMessage)
	if !ok {
		return nil
	}
	var doc struct {
		Status *string `json:"status"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil || doc.Status == nil {
		return nil
	}
	if knownStatus(*doc.Status) {
		return nil
	}
	return []string{*doc.Status}
}

func knownStatus(s string) bool {
	return metadata.StockStatus(s).Known() ||
		metadata.IssuanceStatus(s).Known() ||
		metadata.OrderStatus(s).Known() ||
		metadata.LeaveStatus(s).Known() ||
		metadata.TaskStatus(s).Known() ||
		metadata.ComplaintStatus(s).Known()
}
