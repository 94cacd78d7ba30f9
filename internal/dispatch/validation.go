package dispatch

// RequireNonEmpty checks that a command field was supplied.
func RequireNonEmpty(field, errMsg string) *CommandError {
	if field == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireFound checks that a lookup succeeded.
func RequireFound(ok bool, errMsg string) *CommandError {
	if !ok {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// FirstError returns the first non-nil validation failure.
//
// Lets handlers list their checks in one place:
//
//	if err := dispatch.FirstError(
//	    dispatch.RequireNonEmpty(cmd.Key, dispatch.ErrMsgKeyRequired),
//	); err != nil {
//	    return err
//	}
func FirstError(errs ...*CommandError) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
